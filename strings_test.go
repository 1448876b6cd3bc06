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
)

func TestQuotedStringEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"a\tb"`, "a\tb"},
		{`"a\nb"`, "a\nb"},
		{`"a\\b"`, `a\b`},
		{`"a\"b"`, `a"b`},
		{`"AB"`, "AB"},
		{`"\/"`, "/"},
	}
	for _, tt := range tests {
		r := newReader(tt.in)
		s, err := r.NextString()
		if err != nil {
			t.Errorf("NextString(%q): %v", tt.in, err)
			continue
		}
		if s != tt.want {
			t.Errorf("NextString(%q) = %q, want %q", tt.in, s, tt.want)
		}
	}
}

func TestUnterminatedQuotedStringIsSyntaxError(t *testing.T) {
	r := newReader(`"abc`)
	_, err := r.NextString()
	var se *ojson.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("NextString(unterminated) = %v, want *SyntaxError", err)
	}
	if !errors.Is(err, ojson.ErrUnexpectedEOF) {
		t.Fatalf("errors.Is(err, ErrUnexpectedEOF) = false")
	}
}

func TestBareNewlineInQuotedStringIsSyntaxError(t *testing.T) {
	r := newReader("\"ab\nc\"")
	_, err := r.NextString()
	if !errors.Is(err, ojson.ErrMalformedJSON) {
		t.Fatalf("NextString(embedded newline) = %v, want ErrMalformedJSON", err)
	}
}

func TestSingleQuotedStringRequiresLenient(t *testing.T) {
	r := newReader(`'abc'`)
	if _, err := r.NextString(); err == nil {
		t.Fatalf("NextString(single-quoted) in strict mode did not error")
	}

	r = newReader(`'abc'`, ojson.WithLenient(true))
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != "abc" {
		t.Fatalf("NextString() = %q, want abc", s)
	}
}

func TestUnquotedLiteralRequiresLenient(t *testing.T) {
	r := newReader(`abc`)
	if _, err := r.NextString(); err == nil {
		t.Fatalf("NextString(unquoted) in strict mode did not error")
	}

	r = newReader(`abc`, ojson.WithLenient(true))
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != "abc" {
		t.Fatalf("NextString() = %q, want abc", s)
	}
}

func TestUnquotedLiteralTerminatesAtStructuralChar(t *testing.T) {
	r := newReader(`[abc,def]`, ojson.WithLenient(true))
	if err := r.BeginArray(); err != nil {
		t.Fatalf("BeginArray: %v", err)
	}
	a, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	b, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if a != "abc" || b != "def" {
		t.Fatalf("got %q, %q, want abc, def", a, b)
	}
	if err := r.EndArray(); err != nil {
		t.Fatalf("EndArray: %v", err)
	}
}

func TestInvalidEscapeSequenceIsSyntaxError(t *testing.T) {
	r := newReader(`"a\qb"`)
	_, err := r.NextString()
	if !errors.Is(err, ojson.ErrMalformedJSON) {
		t.Fatalf("NextString(bad escape) = %v, want ErrMalformedJSON", err)
	}
}

func TestMalformedUnicodeEscapeIsSyntaxError(t *testing.T) {
	r := newReader(`"\u00zz"`)
	_, err := r.NextString()
	if !errors.Is(err, ojson.ErrMalformedJSON) {
		t.Fatalf("NextString(bad \\u escape) = %v, want ErrMalformedJSON", err)
	}
}
