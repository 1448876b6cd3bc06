// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ojson

import "strings"

// unquotedTerminators is the set of characters that end a lenient unquoted
// literal, straight out of the lenient grammar table.
const unquotedTerminators = "/\\;#={}[]:,\t\f\r\n "

// scanQuoted consumes runes up to and including the closing quote and
// returns the decoded content. The caller must already have consumed the
// opening quote. It always builds through a strings.Builder rather than
// slicing the lookahead buffer directly: fillBuffer is free to slide the
// buffer's contents or overwrite them mid-scan, so a slice into it
// would not survive a refill once the string is longer than one fill
// window.
func (r *Reader) scanQuoted(quote rune) (string, error) {
	var b strings.Builder
	for {
		c, err := r.nextChar()
		if err != nil {
			return "", err
		}
		switch {
		case c == runeEOF:
			return "", r.syntaxErrorf(true, "unterminated string")
		case c == quote:
			return b.String(), nil
		case c == '\\':
			esc, err := r.readEscapeCharacter()
			if err != nil {
				return "", err
			}
			b.WriteRune(esc)
		case c == '\n':
			return "", r.syntaxErrorf(false, "unterminated string")
		default:
			b.WriteRune(c)
		}
	}
}

// readEscapeCharacter decodes one escape sequence, the leading backslash
// already consumed.
func (r *Reader) readEscapeCharacter() (rune, error) {
	c, err := r.nextChar()
	if err != nil {
		return 0, err
	}
	switch c {
	case 'u':
		var v rune
		for i := 0; i < 4; i++ {
			h, err := r.nextChar()
			if err != nil {
				return 0, err
			}
			d, ok := hexDigit(h)
			if !ok {
				return 0, r.syntaxErrorf(false, "malformed unicode escape")
			}
			v = v<<4 | rune(d)
		}
		return v, nil
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'f':
		return '\f', nil
	case '\n':
		// line continuation: a literal newline may be escaped, in strict
		// and lenient mode alike. The newline itself was already counted
		// by nextChar.
		return '\n', nil
	case '\'', '"', '\\', '/':
		return c, nil
	default:
		return 0, r.syntaxErrorf(false, "invalid escape sequence \\%c", c)
	}
}

func hexDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// scanUnquoted consumes a lenient bare literal: everything up to the next
// terminator character or EOF. If the current character is itself a
// terminator it returns "", which callers reject.
func (r *Reader) scanUnquoted() (string, error) {
	var b strings.Builder
	for {
		c, full, err := r.peekCharAt(0)
		if err != nil {
			return "", err
		}
		if full {
			// Can't see past the current fill window without consuming
			// it; refill by actually reading the char (advances pos) and
			// keep going. Unlike numbers, unquoted literals have no
			// other fallback to backtrack to, so eager consumption here
			// is always safe.
			c2, err := r.nextChar()
			if err != nil {
				return "", err
			}
			if c2 == runeEOF {
				return b.String(), nil
			}
			b.WriteRune(c2)
			continue
		}
		if c == runeEOF || strings.ContainsRune(unquotedTerminators, c) {
			return b.String(), nil
		}
		if _, err := r.nextChar(); err != nil {
			return "", err
		}
		b.WriteRune(c)
	}
}
