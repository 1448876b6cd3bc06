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

// Package source defines the character-producing boundary the ojson
// tokenizer reads from, plus a minimal set of reference adapters. It is
// intentionally thin: type-directed binding, pretty-printing and general
// I/O frameworks are external collaborators per the tokenizer's design.
package source

import (
	"bufio"
	"errors"
	"io"
)

var errRingOverflow = errors.New("source: unread ring buffer overflow")

// Source is a blocking character producer. Read fills dst[off:off+n] with
// up to n runes and returns the count actually read. At end of stream it
// returns (0, io.EOF); any other non-nil error is an I/O failure and is
// propagated unchanged by the tokenizer.
type Source interface {
	Read(dst []rune, off, n int) (int, error)
}

// ringSize is the depth of Reader's decoded-rune look-back ring. Sized the
// same as the teacher's own lexer.reader ring buffer.
const ringSize = 256
const ringMask = ringSize - 1

// Reader adapts an io.Reader decoding UTF-8 text into a Source. It owns the
// underlying reader and closes it (if it implements io.Closer) when Close
// is called.
//
// It keeps a small ring of already-decoded runes behind the read cursor,
// adapted from the teacher's lexer.reader: Unread lets a caller that peeked
// one rune too many (Source itself has no such call, but embedders that
// hold a *Reader directly do) push it back without re-decoding UTF-8,
// bounded by ringSize-1 positions of look-back.
type Reader struct {
	r *bufio.Reader
	c io.Closer

	ring [ringSize]rune
	cur  int // next slot to fill / replay from
	tail int // cur == tail means "nothing buffered to replay"
	back int // runes currently eligible for Unread, capped at ringSize-1
}

// FromReader wraps r as a Source.
func FromReader(r io.Reader) *Reader {
	c, _ := r.(io.Closer)
	return &Reader{r: bufio.NewReader(r), c: c}
}

// Read implements Source.
func (s *Reader) Read(dst []rune, off, n int) (int, error) {
	i := 0
	for i < n {
		r, err := s.readRune()
		if err != nil {
			if i > 0 {
				return i, nil
			}
			return 0, err
		}
		dst[off+i] = r
		i++
	}
	return i, nil
}

// readRune returns the next rune, replaying from the look-back ring first
// if Unread has left anything there.
func (s *Reader) readRune() (rune, error) {
	// Unreading a full ring would bring cur back to tail, which reads as
	// "nothing buffered", so one slot always stays out of reach.
	if s.back < ringMask {
		s.back++
	}
	if s.cur != s.tail {
		ru := s.ring[s.cur]
		s.cur = (s.cur + 1) & ringMask
		return ru, nil
	}
	ru, _, err := s.r.ReadRune()
	if err != nil {
		if s.back > 0 {
			s.back--
		}
		return 0, err
	}
	s.ring[s.cur] = ru
	s.cur = (s.cur + 1) & ringMask
	s.tail = s.cur
	return ru, nil
}

// Unread pushes the most recently read rune back, for embedders holding
// this Reader directly rather than going through the Source interface.
// It fails once everything actually read so far (bounded by ringSize-1) has
// been unread; it cannot walk past positions the ring never decoded.
func (s *Reader) Unread() error {
	if s.back == 0 {
		return errRingOverflow
	}
	s.back--
	s.cur = (s.cur - 1) & ringMask
	return nil
}

// Close releases the underlying reader if it supports io.Closer.
func (s *Reader) Close() error {
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}

// Runes adapts an in-memory []rune slice as a Source, useful for tests and
// for callers who already hold a fully decoded document.
type Runes struct {
	data []rune
	pos  int
}

// FromRunes wraps data as a Source.
func FromRunes(data []rune) *Runes {
	return &Runes{data: data}
}

// FromString decodes s into runes and wraps it as a Source.
func FromString(s string) *Runes {
	return &Runes{data: []rune(s)}
}

// Read implements Source.
func (s *Runes) Read(dst []rune, off, n int) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	c := copy(dst[off:off+n], s.data[s.pos:])
	s.pos += c
	return c, nil
}
