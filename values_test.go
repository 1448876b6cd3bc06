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
	"math"
	"testing"

	"github.com/db47h/ojson"
)

func TestNextStringQuoted(t *testing.T) {
	r := newReader(`"hello world"`)
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != "hello world" {
		t.Fatalf("NextString() = %q", s)
	}
}

func TestNextStringOfNumberLiteral(t *testing.T) {
	r := newReader(`3.14`)
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != "3.14" {
		t.Fatalf("NextString() = %q, want 3.14", s)
	}
}

func TestNextStringPromotesNameToken(t *testing.T) {
	// Reading a field name via NextString (rather than NextName) is the one
	// legitimate case where a name-position token is consumed as a value.
	r := newReader(`{"a": 1}`)
	if err := r.BeginObject(); err != nil {
		t.Fatalf("BeginObject: %v", err)
	}
	s, err := r.NextString()
	if err != nil {
		t.Fatalf("NextString: %v", err)
	}
	if s != "a" {
		t.Fatalf("NextString() = %q, want a", s)
	}
}

func TestNextBooleanTrueFalse(t *testing.T) {
	r := newReader(`[true, false]`)
	if err := r.BeginArray(); err != nil {
		t.Fatalf("BeginArray: %v", err)
	}
	a, err := r.NextBoolean()
	if err != nil || !a {
		t.Fatalf("NextBoolean() = %v, %v, want true, nil", a, err)
	}
	b, err := r.NextBoolean()
	if err != nil || b {
		t.Fatalf("NextBoolean() = %v, %v, want false, nil", b, err)
	}
}

func TestNextNull(t *testing.T) {
	r := newReader(`null`)
	if err := r.NextNull(); err != nil {
		t.Fatalf("NextNull: %v", err)
	}
}

func TestNextLongFromLongLiteral(t *testing.T) {
	r := newReader(`42`)
	v, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	if v != 42 {
		t.Fatalf("NextLong() = %d, want 42", v)
	}
}

func TestNextLongFromQuotedString(t *testing.T) {
	r := newReader(`"42"`)
	v, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	if v != 42 {
		t.Fatalf("NextLong() = %d, want 42", v)
	}
}

func TestNextLongFromLosslessDouble(t *testing.T) {
	r := newReader(`2.0`)
	v, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	if v != 2 {
		t.Fatalf("NextLong() = %d, want 2", v)
	}
}

func TestNextLongFromLossyDoubleErrors(t *testing.T) {
	r := newReader(`2.5`)
	_, err := r.NextLong()
	var nce *ojson.NumericConversionError
	if !errors.As(err, &nce) {
		t.Fatalf("NextLong(2.5) = %v, want *NumericConversionError", err)
	}
}

func TestNextIntOverflowErrors(t *testing.T) {
	r := newReader(`9999999999`)
	_, err := r.NextInt()
	if !errors.Is(err, ojson.ErrNumericConversion) {
		t.Fatalf("NextInt overflow = %v, want ErrNumericConversion", err)
	}
}

func TestNextIntInRange(t *testing.T) {
	r := newReader(`123`)
	v, err := r.NextInt()
	if err != nil {
		t.Fatalf("NextInt: %v", err)
	}
	if v != 123 {
		t.Fatalf("NextInt() = %d, want 123", v)
	}
}

func TestNextDoubleFromLong(t *testing.T) {
	r := newReader(`7`)
	v, err := r.NextDouble()
	if err != nil {
		t.Fatalf("NextDouble: %v", err)
	}
	if v != 7.0 {
		t.Fatalf("NextDouble() = %v, want 7.0", v)
	}
}

func TestNextDoubleFromNumberLiteral(t *testing.T) {
	r := newReader(`3.5e2`)
	v, err := r.NextDouble()
	if err != nil {
		t.Fatalf("NextDouble: %v", err)
	}
	if v != 350.0 {
		t.Fatalf("NextDouble() = %v, want 350.0", v)
	}
}

func TestNextDoubleNaNRejectedInStrictMode(t *testing.T) {
	r := newReader(`"NaN"`)
	_, err := r.NextDouble()
	if !errors.Is(err, ojson.ErrNumericConversion) {
		t.Fatalf("NextDouble(NaN) strict = %v, want ErrNumericConversion", err)
	}
}

func TestNextDoubleNaNAcceptedWhenLenient(t *testing.T) {
	r := newReader(`"NaN"`, ojson.WithLenient(true))
	v, err := r.NextDouble()
	if err != nil {
		t.Fatalf("NextDouble: %v", err)
	}
	if !math.IsNaN(v) {
		t.Fatalf("NextDouble() = %v, want NaN", v)
	}
}

func TestSkipValueSkipsNestedStructure(t *testing.T) {
	r := newReader(`{"a": [1, 2, {"b": 3}], "c": 4}`)
	if err := r.BeginObject(); err != nil {
		t.Fatalf("BeginObject: %v", err)
	}
	if _, err := r.NextName(); err != nil {
		t.Fatalf("NextName: %v", err)
	}
	if err := r.SkipValue(); err != nil {
		t.Fatalf("SkipValue: %v", err)
	}
	name, err := r.NextName()
	if err != nil {
		t.Fatalf("NextName: %v", err)
	}
	if name != "c" {
		t.Fatalf("NextName() = %q, want c", name)
	}
	v, err := r.NextLong()
	if err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	if v != 4 {
		t.Fatalf("NextLong() = %d, want 4", v)
	}
	if err := r.EndObject(); err != nil {
		t.Fatalf("EndObject: %v", err)
	}
}

func TestSkipValueAtEndOfContainerIsStateError(t *testing.T) {
	r := newReader(`[]`)
	if err := r.BeginArray(); err != nil {
		t.Fatalf("BeginArray: %v", err)
	}
	if err := r.SkipValue(); err == nil {
		t.Fatalf("SkipValue at END_ARRAY did not error")
	}
}
