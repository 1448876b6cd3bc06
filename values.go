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
	"math"
	"strconv"

	"github.com/db47h/ojson/token"
)

// numberText materializes a peeked NUMBER literal's text from the buffer.
// pos has not moved since peekNumber ran, so this is a plain lookahead
// slice built through peekCharAt rather than a direct buf index.
func (r *Reader) numberText() (string, error) {
	n := r.peekedNumberLength
	b := make([]rune, n)
	for i := 0; i < n; i++ {
		c, _, err := r.peekCharAt(i)
		if err != nil {
			return "", err
		}
		b[i] = c
	}
	return string(b), nil
}

// commitScalar returns the textual form of the scalar k (which must be the
// currently memoized peek), advances pos past it if it was only
// non-destructively peeked, bumps the path index of the enclosing
// container, and clears the peek memo. Call exactly once per token.
func (r *Reader) commitScalar(k token.Kind) (string, error) {
	var s string
	switch k {
	case token.Long:
		s = strconv.FormatInt(r.peekedLong, 10)
		r.pos += r.peekedConsumeLen
	case token.Number:
		text, err := r.numberText()
		if err != nil {
			return "", err
		}
		s = text
		r.pos += r.peekedConsumeLen
	case token.DoubleQuoted, token.SingleQuoted, token.Unquoted, token.Buffered:
		s = r.peekedString
	default:
		return "", r.stateErrorf("expected a value but was %s", k)
	}
	r.advance()
	r.peeked = token.None
	return s, nil
}

// NextName consumes an object field name and records it at the current
// path depth.
func (r *Reader) NextName() (string, error) {
	k, err := r.Peek()
	if err != nil {
		return "", err
	}
	switch k {
	case token.DoubleQuotedName, token.SingleQuotedName, token.UnquotedName:
		s := r.peekedString
		r.pathNames[len(r.pathNames)-1] = s
		r.peeked = token.None
		return s, nil
	default:
		return "", r.stateErrorf("expected a name but was %s", k)
	}
}

// NextString consumes a string value, or the verbatim textual form of a
// number. It also accepts a name-position token, promoting it to a plain
// string read instead of recording it as the enclosing object's field
// name — the one case where a name token is legitimately read as a value.
func (r *Reader) NextString() (string, error) {
	k, err := r.Peek()
	if err != nil {
		return "", err
	}
	switch k {
	case token.DoubleQuotedName, token.SingleQuotedName, token.UnquotedName:
		s := r.peekedString
		r.peeked = token.None
		return s, nil
	case token.DoubleQuoted, token.SingleQuoted, token.Unquoted, token.Buffered, token.Long, token.Number:
		return r.commitScalar(k)
	default:
		return "", r.stateErrorf("expected a string but was %s", k)
	}
}

// NextBoolean consumes a true/false literal.
func (r *Reader) NextBoolean() (bool, error) {
	k, err := r.Peek()
	if err != nil {
		return false, err
	}
	switch k {
	case token.True, token.False:
		r.pos += r.peekedConsumeLen
		r.advance()
		r.peeked = token.None
		return k == token.True, nil
	default:
		return false, r.stateErrorf("expected a boolean but was %s", k)
	}
}

// NextNull consumes a null literal, including a synthesised null for a
// skipped array slot in lenient mode.
func (r *Reader) NextNull() error {
	k, err := r.Peek()
	if err != nil {
		return err
	}
	if k != token.Null {
		return r.stateErrorf("expected null but was %s", k)
	}
	r.pos += r.peekedConsumeLen
	r.advance()
	r.peeked = token.None
	return nil
}

// NextLong consumes a value that fits exactly in an int64: a literal
// already classified LONG, or a NUMBER/string whose text parses as an
// integer or, failing that, as a double that converts back losslessly.
func (r *Reader) NextLong() (int64, error) {
	k, err := r.Peek()
	if err != nil {
		return 0, err
	}
	if k == token.Long {
		v := r.peekedLong
		if _, err := r.commitScalar(k); err != nil {
			return 0, err
		}
		return v, nil
	}
	switch k {
	case token.Number, token.DoubleQuoted, token.SingleQuoted, token.Unquoted, token.Buffered:
		s, err := r.commitScalar(k)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v, nil
		}
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, r.numericErrorf("value %q is not a valid long", s)
		}
		v := int64(f)
		if float64(v) != f {
			return 0, r.numericErrorf("value %q cannot be represented as a long without loss", s)
		}
		return v, nil
	default:
		return 0, r.stateErrorf("expected a long but was %s", k)
	}
}

// NextInt behaves like NextLong, additionally requiring the value fit in
// an int32.
func (r *Reader) NextInt() (int32, error) {
	v, err := r.NextLong()
	if err != nil {
		return 0, err
	}
	if int64(int32(v)) != v {
		return 0, r.numericErrorf("value %d overflows int32", v)
	}
	return int32(v), nil
}

// NextDouble consumes a numeric or string value as a float64. In strict
// mode NaN and infinities are rejected even though strconv.ParseFloat
// accepts their textual form (e.g. from a quoted string such as "NaN").
func (r *Reader) NextDouble() (float64, error) {
	k, err := r.Peek()
	if err != nil {
		return 0, err
	}
	if k == token.Long {
		v := r.peekedLong
		if _, err := r.commitScalar(k); err != nil {
			return 0, err
		}
		return float64(v), nil
	}
	switch k {
	case token.Number, token.DoubleQuoted, token.SingleQuoted, token.Unquoted, token.Buffered:
		s, err := r.commitScalar(k)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, r.numericErrorf("value %q is not a valid double", s)
		}
		if !r.checkLenient() && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return 0, r.numericErrorf("JSON forbids NaN and infinite values: %s", s)
		}
		return f, nil
	default:
		return 0, r.stateErrorf("expected a double but was %s", k)
	}
}

// SkipValue consumes the next value, descending recursively into arrays
// and objects. Afterward the path name at the current depth is replaced
// with the literal "null" rather than cleared to empty, matching the
// surprising-but-documented behavior callers may observe via GetPath.
func (r *Reader) SkipValue() error {
	k, err := r.Peek()
	if err != nil {
		return err
	}
	switch k {
	case token.BeginArray:
		if err := r.BeginArray(); err != nil {
			return err
		}
		for {
			has, err := r.HasNext()
			if err != nil {
				return err
			}
			if !has {
				break
			}
			if err := r.SkipValue(); err != nil {
				return err
			}
		}
		if err := r.EndArray(); err != nil {
			return err
		}
	case token.BeginObject:
		if err := r.BeginObject(); err != nil {
			return err
		}
		for {
			has, err := r.HasNext()
			if err != nil {
				return err
			}
			if !has {
				break
			}
			if _, err := r.NextName(); err != nil {
				return err
			}
			if err := r.SkipValue(); err != nil {
				return err
			}
		}
		if err := r.EndObject(); err != nil {
			return err
		}
	case token.EndArray, token.EndObject, token.EOF:
		return r.stateErrorf("no value to skip")
	default:
		if err := r.skipScalar(k); err != nil {
			return err
		}
	}
	if n := len(r.pathNames); n > 0 {
		r.pathNames[n-1] = "null"
	}
	return nil
}

func (r *Reader) skipScalar(k token.Kind) error {
	switch k {
	case token.True, token.False:
		_, err := r.NextBoolean()
		return err
	case token.Null:
		return r.NextNull()
	default:
		_, err := r.NextString()
		return err
	}
}
