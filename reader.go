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
	"io"

	"github.com/db47h/ojson/source"
	"github.com/db47h/ojson/token"
)

// minBufferSize is the smallest lookahead buffer a Reader will accept: it
// must be large enough to hold the longest token reportable as a number
// without allocation.
const minBufferSize = 1024

const defaultBufferSize = minBufferSize

// scope identifies one frame of the parsing stack: which kind of container
// is being read, and how far into it the reader has progressed.
type scope int8

const (
	scopeEmptyDocument scope = iota
	scopeNonemptyDocument
	scopeEmptyArray
	scopeNonemptyArray
	scopeEmptyObject
	scopeDanglingName
	scopeNonemptyObject
	scopeClosed
)

// Reader is a pull-based JSON tokenizer. A Reader is not safe for
// concurrent use; exactly one goroutine may call its methods at a time.
type Reader struct {
	src source.Source

	// Lookahead buffer. Invariant: 0 <= pos <= limit <= len(buf).
	buf   []rune
	pos   int
	limit int

	lenient bool

	lineNumber int // newlines seen so far
	lineStart  int // buffer offset (relative to the start of the current fill window) of the current line's first rune

	// absOffset is the rune offset, from the start of the stream, of
	// buf[0] in the current fill window; offset adds pos to it. Columns
	// do not need it (see position).
	absOffset int

	// Peek memo. peeked == token.None means "must re-peek".
	peeked     token.Kind
	peekedLong int64
	// peekedNumberLength is the rune length of a peeked NUMBER literal,
	// valid iff peeked == token.Number; it lets nextString/nextDouble
	// slice the literal's text out of buf without re-scanning.
	peekedNumberLength int
	// peekedConsumeLen is the rune length to advance pos by once a peeked
	// LONG, NUMBER, TRUE, FALSE or NULL is actually consumed. Those scans
	// are all non-destructive lookahead (peekCharAt), so whichever Next*
	// call commits to the token needs this to know how far to skip.
	// Quoted and unquoted-literal strings consume as they scan instead,
	// so they never need this.
	peekedConsumeLen int
	peekedString     string

	// Parallel scope stack. Never empties below one entry.
	scopes      []scope
	pathNames   []string
	pathIndices []int

	errorHandler func(*Reader, error)

	bomChecked bool
	closed     bool
}

// New creates a Reader pulling characters from src.
func New(src source.Source, opts ...Option) *Reader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bufSize := o.bufferSize
	if bufSize < minBufferSize {
		bufSize = minBufferSize
	}
	r := &Reader{
		src:          src,
		buf:          make([]rune, bufSize),
		lenient:      o.lenient,
		lineNumber:   0,
		peeked:       token.None,
		scopes:       make([]scope, 1, 16),
		pathNames:    make([]string, 1, 16),
		pathIndices:  make([]int, 1, 16),
		errorHandler: o.errorHandler,
	}
	r.scopes[0] = scopeEmptyDocument
	return r
}

// SetLenient toggles the lenient parsing dialect.
func (r *Reader) SetLenient(lenient bool) { r.lenient = lenient }

// IsLenient reports whether the reader is in lenient mode.
func (r *Reader) IsLenient() bool { return r.lenient }

// Close forces the reader's scope to CLOSED and releases the underlying
// source, if it implements io.Closer. Any subsequent operation returns a
// *StateError.
func (r *Reader) Close() error {
	r.peeked = token.None
	r.scopes = r.scopes[:1]
	r.scopes[0] = scopeClosed
	r.closed = true
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r *Reader) top() scope { return r.scopes[len(r.scopes)-1] }

func (r *Reader) setTop(s scope) { r.scopes[len(r.scopes)-1] = s }

// position computes the current line/column/path for diagnostics.
func (r *Reader) position() token.Position {
	return token.Position{
		Line: r.lineNumber + 1,
		// absOffset cancels out here: the invariant absOffset+lineStart
		// == the absolute offset of the current line's first rune holds
		// across every fillBuffer shift, so pos-lineStart alone gives
		// the column within the line.
		Column: r.pos - r.lineStart + 1,
		Path:   r.Path(),
	}
}

// offset returns the absolute rune offset of the read cursor from the
// start of the stream.
func (r *Reader) offset() int { return r.absOffset + r.pos }

// TokenPosition exposes the current line/column/path directly; every
// ojson diagnostic formats the same information via Position.String.
func (r *Reader) TokenPosition() token.Position { return r.position() }

// fillBuffer ensures limit-pos >= min, refilling from src as needed. It
// slides any unread data to the start of the buffer first. Callers that
// invoke fillBuffer must reload any cached copies of pos/limit afterwards.
func (r *Reader) fillBuffer(min int) (bool, error) {
	if r.limit-r.pos >= min {
		return true, nil
	}
	if min > len(r.buf) {
		// Caller is asking for more than the buffer can ever hold; this
		// is only used by the number scanner, which treats failure to
		// grow as "surrender to the lenient unquoted-literal path", not
		// as an error.
		min = len(r.buf)
	}

	if r.pos > 0 {
		n := copy(r.buf, r.buf[r.pos:r.limit])
		r.absOffset += r.pos
		r.lineStart -= r.pos
		r.limit = n
		r.pos = 0
	}

	for r.limit-r.pos < min {
		n, err := r.src.Read(r.buf, r.limit, len(r.buf)-r.limit)
		r.limit += n
		if n == 0 {
			if err == io.EOF {
				return false, nil
			}
			if err != nil {
				if r.errorHandler != nil {
					r.errorHandler(r, err)
				}
				return false, err
			}
			return false, nil
		}
	}
	return true, nil
}

// atCapacity reports whether the buffer holds len(buf) unread runes, i.e.
// it cannot be grown further. fillBuffer's boolean return only means "as
// full as it's going to get"; this tells buffer exhaustion apart from
// genuine EOF. The number DFA does not call it: it relies on peekCharAt's
// full result instead.
func (r *Reader) atCapacity() bool { return r.pos == 0 && r.limit == len(r.buf) }

// require behaves like fillBuffer but turns EOF into a *SyntaxError tagged
// as unexpected-EOF, for call sites that know more input must follow.
func (r *Reader) require(min int) error {
	ok, err := r.fillBuffer(min)
	if err != nil {
		return err
	}
	if !ok {
		return r.syntaxErrorf(true, "unexpected end of JSON input")
	}
	return nil
}
