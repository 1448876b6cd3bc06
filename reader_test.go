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

package ojson_test

import (
	"errors"
	"testing"

	"github.com/db47h/ojson"
	"github.com/db47h/ojson/source"
	"github.com/db47h/ojson/token"
)

func newReader(s string, opts ...ojson.Option) *ojson.Reader {
	return ojson.New(source.FromString(s), opts...)
}

func TestPeekIdempotent(t *testing.T) {
	r := newReader(`{"a":1}`)
	k1, err := r.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	k2, err := r.Peek()
	if err != nil {
		t.Fatalf("Peek (second): %v", err)
	}
	if k1 != token.BeginObject || k1 != k2 {
		t.Fatalf("Peek = %v, %v, want BeginObject twice", k1, k2)
	}
}

func TestBeginObjectMismatchIsStateError(t *testing.T) {
	r := newReader(`[1]`)
	err := r.BeginObject()
	var se *ojson.StateError
	if !errors.As(err, &se) {
		t.Fatalf("BeginObject on array = %v (%T), want *StateError", err, err)
	}
	if !errors.Is(err, ojson.ErrState) {
		t.Fatalf("errors.Is(err, ErrState) = false")
	}
}

func TestCloseThenOperateIsStateError(t *testing.T) {
	r := newReader(`{}`)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_, err := r.Peek()
	if !errors.Is(err, ojson.ErrState) {
		t.Fatalf("Peek after Close = %v, want ErrState", err)
	}
}

func TestStrictRejectsMultipleTopLevelValues(t *testing.T) {
	r := newReader(`1 2`)
	if _, err := r.NextLong(); err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	_, err := r.Peek()
	var se *ojson.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Peek after first top-level value (strict) = %v, want *SyntaxError", err)
	}
}

func TestLenientAcceptsMultipleTopLevelValues(t *testing.T) {
	r := newReader(`1 2`, ojson.WithLenient(true))
	a, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	b, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	if a != 1 || b != 2 {
		t.Fatalf("values = %d, %d, want 1, 2", a, b)
	}
}

func TestConsumesLeadingBOM(t *testing.T) {
	r := newReader("﻿" + `{"a":1}`)
	k, err := r.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if k != token.BeginObject {
		t.Fatalf("Peek = %v, want BeginObject", k)
	}
}

func TestConsumesNonExecutePrefixOnlyWhenLenient(t *testing.T) {
	r := newReader(")]}'\n[1]", ojson.WithLenient(true))
	k, err := r.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if k != token.BeginArray {
		t.Fatalf("Peek = %v, want BeginArray", k)
	}
}

func TestStrictLeavesNonExecutePrefixAlone(t *testing.T) {
	r := newReader(")]}'\n[1]")
	_, err := r.Peek()
	if err == nil {
		t.Fatalf("Peek in strict mode over non-execute prefix did not error")
	}
}

func TestSetLenientIsLenient(t *testing.T) {
	r := newReader(`1`)
	if r.IsLenient() {
		t.Fatalf("IsLenient() = true by default")
	}
	r.SetLenient(true)
	if !r.IsLenient() {
		t.Fatalf("IsLenient() = false after SetLenient(true)")
	}
}

func TestWithBufferSizeRoundsUpToMinimum(t *testing.T) {
	// A buffer smaller than minBufferSize must not break normal reads; this
	// exercises that the Reader still works end to end when the requested
	// size is rounded up internally.
	r := newReader(`{"a":1}`, ojson.WithBufferSize(1))
	k, err := r.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if k != token.BeginObject {
		t.Fatalf("Peek = %v, want BeginObject", k)
	}
}

func TestWithErrorHandlerInvokedOnIOError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	src := &erroringSource{err: boom}
	r := ojson.New(src, ojson.WithErrorHandler(func(_ *ojson.Reader, err error) {
		called = true
		if !errors.Is(err, boom) {
			t.Fatalf("handler err = %v, want %v", err, boom)
		}
	}))
	_, err := r.Peek()
	if err == nil {
		t.Fatalf("Peek did not propagate source error")
	}
	if !called {
		t.Fatalf("error handler was not invoked")
	}
}

type erroringSource struct{ err error }

func (s *erroringSource) Read(dst []rune, off, n int) (int, error) { return 0, s.err }

func TestTokenPositionAdvancesAcrossLines(t *testing.T) {
	r := newReader("{\n  \"a\": 1\n}")
	if err := r.BeginObject(); err != nil {
		t.Fatalf("BeginObject: %v", err)
	}
	if _, err := r.NextName(); err != nil {
		t.Fatalf("NextName: %v", err)
	}
	pos := r.TokenPosition()
	if pos.Line != 2 {
		t.Fatalf("Line = %d, want 2", pos.Line)
	}
}
