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

import (
	"strings"

	"github.com/db47h/ojson/token"
)

const byteOrderMark = '﻿'

// checkLenient is the single gate every lenient-only code path tests.
// Kept as its own method, rather than reading r.lenient inline everywhere,
// so the gate is grep-able in one place.
func (r *Reader) checkLenient() bool { return r.lenient }

// Peek classifies the next token without consuming it. It is idempotent:
// calling it repeatedly without an intervening Next*/Begin*/End* call
// returns the same kind from the memoized peeked field.
func (r *Reader) Peek() (token.Kind, error) {
	if r.closed {
		return token.None, r.stateErrorf("reader is closed")
	}
	if r.peeked != token.None {
		return r.peeked, nil
	}
	k, err := r.doPeek()
	if err != nil {
		return token.None, err
	}
	r.peeked = k
	return k, nil
}

// doPeek dispatches on the current scope, per the grammar each scope
// enforces.
func (r *Reader) doPeek() (token.Kind, error) {
	// Peek auxiliaries from a previous classification must never leak into
	// this one; in particular a synthesised NULL for a skipped array slot
	// sets no consume length of its own and must not inherit a stale one.
	r.peekedConsumeLen = 0
	switch r.top() {
	case scopeEmptyDocument:
		if err := r.consumeBOM(); err != nil {
			return token.None, err
		}
		if r.checkLenient() {
			if err := r.consumeNonExecutePrefix(); err != nil {
				return token.None, err
			}
		}
		r.setTop(scopeNonemptyDocument)
		return r.peekValue()
	case scopeNonemptyDocument:
		c, err := r.nextNonWhitespace()
		if err != nil {
			return token.None, err
		}
		if c == runeEOF {
			return token.EOF, nil
		}
		if !r.checkLenient() {
			r.unreadChar()
			return token.None, r.syntaxErrorf(false, "use of multiple top-level values disallowed; call SetLenient(true) to accept it")
		}
		r.unreadChar()
		return r.peekValue()
	case scopeEmptyArray:
		return r.peekArrayValue(true)
	case scopeNonemptyArray:
		return r.peekArrayValue(false)
	case scopeEmptyObject:
		return r.peekObjectName(true)
	case scopeNonemptyObject:
		return r.peekObjectName(false)
	case scopeDanglingName:
		return r.peekAfterName()
	case scopeClosed:
		return token.None, r.stateErrorf("reader is closed")
	default:
		return token.None, r.stateErrorf("unreachable reader scope")
	}
}

// peekArrayValue handles both EMPTY_ARRAY (first == true, no separator
// expected) and NONEMPTY_ARRAY (first == false, a separator must precede
// the value or the closing bracket).
func (r *Reader) peekArrayValue(first bool) (token.Kind, error) {
	c, err := r.nextNonWhitespaceRequired()
	if err != nil {
		return token.None, err
	}
	if !first {
		switch {
		case c == ']':
			r.setTop(scopeNonemptyArray)
			return token.EndArray, nil
		case c == ',':
		case c == ';' && r.checkLenient():
		default:
			return token.None, r.syntaxErrorf(false, "expected ',' or ']' but encountered %q", c)
		}
		c, err = r.nextNonWhitespaceRequired()
		if err != nil {
			return token.None, err
		}
	}
	switch {
	case c == ']':
		r.setTop(scopeNonemptyArray)
		return token.EndArray, nil
	case (c == ',' || c == ';') && r.checkLenient():
		// Unnecessary separator: the skipped slot is reported as null. The
		// separator itself is left unread so the *next* peek sees it again
		// and repeats this same branch, one NULL per skipped slot.
		r.unreadChar()
		r.setTop(scopeNonemptyArray)
		return token.Null, nil
	}
	r.unreadChar()
	r.setTop(scopeNonemptyArray)
	return r.peekValue()
}

// peekObjectName reads the next field name, or the closing brace.
func (r *Reader) peekObjectName(first bool) (token.Kind, error) {
	c, err := r.nextNonWhitespaceRequired()
	if err != nil {
		return token.None, err
	}
	if !first {
		switch {
		case c == '}':
			r.setTop(scopeNonemptyObject)
			return token.EndObject, nil
		case c == ',':
		case c == ';' && r.checkLenient():
		default:
			return token.None, r.syntaxErrorf(false, "expected ',' or '}' but encountered %q", c)
		}
		c, err = r.nextNonWhitespaceRequired()
		if err != nil {
			return token.None, err
		}
	}
	switch c {
	case '"':
		s, err := r.scanQuoted('"')
		if err != nil {
			return token.None, err
		}
		r.peekedString = s
		r.setTop(scopeDanglingName)
		return token.DoubleQuotedName, nil
	case '\'':
		if !r.checkLenient() {
			return token.None, r.syntaxErrorf(false, "use of single-quoted names disallowed")
		}
		s, err := r.scanQuoted('\'')
		if err != nil {
			return token.None, err
		}
		r.peekedString = s
		r.setTop(scopeDanglingName)
		return token.SingleQuotedName, nil
	case '}':
		if first {
			r.setTop(scopeNonemptyObject)
			return token.EndObject, nil
		}
		return token.None, r.syntaxErrorf(false, "expected name")
	default:
		if !r.checkLenient() {
			return token.None, r.syntaxErrorf(false, "expected name")
		}
		r.unreadChar()
		s, err := r.scanUnquoted()
		if err != nil {
			return token.None, err
		}
		if s == "" {
			return token.None, r.syntaxErrorf(false, "expected name")
		}
		r.peekedString = s
		r.setTop(scopeDanglingName)
		return token.UnquotedName, nil
	}
}

// peekAfterName consumes the name/value separator.
func (r *Reader) peekAfterName() (token.Kind, error) {
	c, err := r.nextNonWhitespaceRequired()
	if err != nil {
		return token.None, err
	}
	switch {
	case c == ':':
	case c == '=' && r.checkLenient():
		c2, full, err := r.peekCharAt(0)
		if err != nil {
			return token.None, err
		}
		if !full && c2 == '>' {
			if _, err := r.nextChar(); err != nil {
				return token.None, err
			}
		}
	default:
		return token.None, r.syntaxErrorf(false, "expected ':' but encountered %q", c)
	}
	r.setTop(scopeNonemptyObject)
	return r.peekValue()
}

// peekValue dispatches on the first non-whitespace character of a value
// position: structural brackets, a quoted string, or (falling through
// unreadChar) a keyword, a number, or a lenient unquoted literal.
func (r *Reader) peekValue() (token.Kind, error) {
	c, err := r.nextNonWhitespaceRequired()
	if err != nil {
		return token.None, err
	}
	switch c {
	case '{':
		return token.BeginObject, nil
	case '[':
		return token.BeginArray, nil
	case '"':
		s, err := r.scanQuoted('"')
		if err != nil {
			return token.None, err
		}
		r.peekedString = s
		return token.DoubleQuoted, nil
	case '\'':
		if !r.checkLenient() {
			return token.None, r.syntaxErrorf(false, "use of single-quoted strings disallowed")
		}
		s, err := r.scanQuoted('\'')
		if err != nil {
			return token.None, err
		}
		r.peekedString = s
		return token.SingleQuoted, nil
	}
	r.unreadChar()

	k, err := r.peekKeywordOrNumber()
	if err != nil || k != token.None {
		return k, err
	}

	if !r.checkLenient() {
		return token.None, r.syntaxErrorf(false, "unexpected character %q", c)
	}
	s, err := r.scanUnquoted()
	if err != nil {
		return token.None, err
	}
	if s == "" {
		return token.None, r.syntaxErrorf(false, "unexpected character %q", c)
	}
	r.peekedString = s
	return token.Buffered, nil
}

// peekKeywordOrNumber tries, in order, the three reserved keywords and
// then a number literal, all via non-destructive lookahead so a rejection
// leaves pos untouched for the next fallback.
func (r *Reader) peekKeywordOrNumber() (token.Kind, error) {
	if k, ok, err := r.matchKeyword("true", token.True); err != nil || ok {
		return k, err
	}
	if k, ok, err := r.matchKeyword("false", token.False); err != nil || ok {
		return k, err
	}
	if k, ok, err := r.matchKeyword("null", token.Null); err != nil || ok {
		return k, err
	}
	return r.peekNumber()
}

// matchKeyword tests whether the reserved word starts at pos, case
// sensitively in strict mode and case-insensitively in lenient mode, and
// is not itself a prefix of a longer unquoted literal (e.g. "nullable").
func (r *Reader) matchKeyword(word string, kind token.Kind) (token.Kind, bool, error) {
	for i := 0; i < len(word); i++ {
		c, full, err := r.peekCharAt(i)
		if err != nil {
			return token.None, false, err
		}
		if full {
			return token.None, false, nil
		}
		want := rune(word[i])
		if c != want && !(r.checkLenient() && toLowerASCII(c) == want) {
			return token.None, false, nil
		}
	}
	c, full, err := r.peekCharAt(len(word))
	if err != nil {
		return token.None, false, err
	}
	if !full && !isLiteralTerminator(c) {
		return token.None, false, nil
	}
	r.peekedConsumeLen = len(word)
	return kind, true, nil
}

func toLowerASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isLiteralTerminator(c rune) bool {
	return c == runeEOF || c == '"' || c == '\'' || strings.ContainsRune(unquotedTerminators, c)
}

// consumeBOM silently swallows a single leading byte-order mark, checked
// at most once per Reader regardless of how many times nextNonWhitespace
// or the EMPTY_DOCUMENT dispatch runs.
func (r *Reader) consumeBOM() error {
	if r.bomChecked {
		return nil
	}
	r.bomChecked = true
	c, full, err := r.peekCharAt(0)
	if err != nil {
		return err
	}
	if !full && c == byteOrderMark {
		if _, err := r.nextChar(); err != nil {
			return err
		}
	}
	return nil
}

// consumeNonExecutePrefix swallows the five-character sequence )]}'\n if
// it is present at the very start of the document, left over from a
// defense against cross-site script inclusion in the source JSON.
func (r *Reader) consumeNonExecutePrefix() error {
	const prefix = ")]}'\n"
	for i := 0; i < len(prefix); i++ {
		c, full, err := r.peekCharAt(i)
		if err != nil {
			return err
		}
		if full || c != rune(prefix[i]) {
			return nil
		}
	}
	for range prefix {
		if _, err := r.nextChar(); err != nil {
			return err
		}
	}
	return nil
}

// nextNonWhitespace returns the next significant character, skipping
// spaces/tabs/CR/LF and, in lenient mode, comments. It returns runeEOF
// (with a nil error) at end of stream rather than treating that as an
// error condition: callers that require more input call
// nextNonWhitespaceRequired instead.
func (r *Reader) nextNonWhitespace() (rune, error) {
	if err := r.consumeBOM(); err != nil {
		return 0, err
	}
	for {
		c, err := r.nextChar()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '/':
			if !r.checkLenient() {
				return c, nil
			}
			c2, full, err := r.peekCharAt(0)
			if err != nil {
				return 0, err
			}
			switch {
			case !full && c2 == '/':
				if _, err := r.nextChar(); err != nil {
					return 0, err
				}
				if err := r.skipToLineEnd(); err != nil {
					return 0, err
				}
				continue
			case !full && c2 == '*':
				if _, err := r.nextChar(); err != nil {
					return 0, err
				}
				if err := r.skipBlockComment(); err != nil {
					return 0, err
				}
				continue
			default:
				return c, nil
			}
		case '#':
			if !r.checkLenient() {
				return c, nil
			}
			if err := r.skipToLineEnd(); err != nil {
				return 0, err
			}
			continue
		}
		return c, nil
	}
}

func (r *Reader) nextNonWhitespaceRequired() (rune, error) {
	c, err := r.nextNonWhitespace()
	if err != nil {
		return 0, err
	}
	if c == runeEOF {
		return 0, r.syntaxErrorf(true, "unexpected end of JSON input")
	}
	return c, nil
}

func (r *Reader) skipToLineEnd() error {
	for {
		c, err := r.nextChar()
		if err != nil {
			return err
		}
		if c == '\n' || c == runeEOF {
			return nil
		}
	}
}

func (r *Reader) skipBlockComment() error {
	for {
		c, err := r.nextChar()
		if err != nil {
			return err
		}
		if c == runeEOF {
			return r.syntaxErrorf(true, "unterminated comment")
		}
		if c == '*' {
			c2, full, err := r.peekCharAt(0)
			if err != nil {
				return err
			}
			if !full && c2 == '/' {
				r.nextChar()
				return nil
			}
		}
	}
}
