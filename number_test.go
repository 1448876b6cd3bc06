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
	"testing"

	"github.com/db47h/ojson"
	"github.com/db47h/ojson/token"
)

func TestPeekClassifiesLongVsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want token.Kind
	}{
		{"42", token.Long},
		{"-42", token.Long},
		{"0", token.Long},
		{"3.14", token.Number},
		{"1e10", token.Number},
		{"1.5e-3", token.Number},
		{"-0", token.Number}, // see DESIGN.md: -0 round-trips through double
		{"9223372036854775807", token.Long},
		// one past int64 max: must overflow to Number, not silently wrap.
		{"9223372036854775808", token.Number},
	}
	for _, tt := range tests {
		r := newReader(tt.in)
		k, err := r.Peek()
		if err != nil {
			t.Errorf("Peek(%q): %v", tt.in, err)
			continue
		}
		if k != tt.want {
			t.Errorf("Peek(%q) = %v, want %v", tt.in, k, tt.want)
		}
	}
}

func TestLeadingZeroFollowedByDigitIsRejectedAsNumber(t *testing.T) {
	// "01" is not a valid JSON number; in lenient mode it instead falls
	// through to the bare-literal path.
	r := newReader(`01`, ojson.WithLenient(true))
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != "01" {
		t.Fatalf("NextString() = %q, want the literal text \"01\"", s)
	}
}

func TestNegativeLongRoundTrips(t *testing.T) {
	r := newReader(`-9223372036854775808`)
	v, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	const minInt64 = -1 << 63
	if v != minInt64 {
		t.Fatalf("NextLong() = %d, want math.MinInt64", v)
	}
}

func TestZeroFollowedByDecimalIsNumber(t *testing.T) {
	r := newReader(`0.5`)
	k, err := r.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if k != token.Number {
		t.Fatalf("Peek(0.5) = %v, want Number", k)
	}
	v, err := r.NextDouble()
	if err != nil {
		t.Fatalf("NextDouble: %v", err)
	}
	if v != 0.5 {
		t.Fatalf("NextDouble() = %v, want 0.5", v)
	}
}

// TestOversizedDigitRunSurrendersToUnquotedLiteral exercises peekCharAt's
// "full" (buffer-exhausted, not genuine EOF) branch: a run of digits longer
// than the lookahead buffer can never terminate within one fill window, so
// the number DFA gives up and the lenient unquoted-literal path reads it
// back out verbatim instead.
func TestOversizedDigitRunSurrendersToUnquotedLiteral(t *testing.T) {
	digits := make([]byte, 4096)
	for i := range digits {
		digits[i] = '1'
	}
	in := string(digits)
	r := newReader(in, ojson.WithLenient(true))
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != in {
		t.Fatalf("NextString() length = %d, want %d", len(s), len(in))
	}
}
