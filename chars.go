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

const runeEOF = -1

// nextChar returns the next rune, advancing pos, or runeEOF if the source
// is exhausted. It bumps the line tracking on '\n'. Callers must have
// already ensured there is at least one rune available (fillBuffer(1)) or
// be prepared to treat runeEOF as a legitimate answer.
func (r *Reader) nextChar() (rune, error) {
	if r.pos >= r.limit {
		ok, err := r.fillBuffer(1)
		if err != nil {
			return 0, err
		}
		if !ok {
			return runeEOF, nil
		}
	}
	c := r.buf[r.pos]
	r.pos++
	if c == '\n' {
		r.lineNumber++
		r.lineStart = r.pos
	}
	return c, nil
}

// unreadChar backs the cursor up by one rune. It must only be called to
// undo the immediately preceding nextChar call.
func (r *Reader) unreadChar() {
	r.pos--
	if r.buf[r.pos] == '\n' {
		r.lineNumber--
		// lineStart is only used relative to the current line, and once we
		// back up over a newline we are by definition no longer asking for
		// a column on the line we just left; nothing reads lineStart
		// again before nextChar re-derives it. Left untouched is safe:
		// the only consumer between unreadChar and the matching nextChar
		// is a doPeek() dispatch that does not itself report a position.
	}
}

// peekCharAt returns the rune n positions ahead of pos without consuming
// anything, for the number DFA's forward scan. It distinguishes two kinds
// of "nothing more to look at":
//
//   - genuine end of stream: c == runeEOF, full == false.
//   - the lookahead buffer cannot be grown far enough to see position n,
//     even though the underlying source might still have more runes:
//     full == true. The number DFA treats this as "surrender": a literal
//     longer than the buffer falls back to the lenient unquoted-literal
//     path rather than being reported as a number.
func (r *Reader) peekCharAt(n int) (c rune, full bool, err error) {
	if r.pos+n >= r.limit {
		ok, ferr := r.fillBuffer(n + 1)
		if ferr != nil {
			return 0, false, ferr
		}
		if !ok {
			return runeEOF, false, nil
		}
		if r.pos+n >= r.limit {
			// fillBuffer did all it could (buffer at capacity) but still
			// didn't reach position n: there may be more input, we just
			// can't see it without discarding unread data.
			return 0, true, nil
		}
	}
	return r.buf[r.pos+n], false, nil
}
