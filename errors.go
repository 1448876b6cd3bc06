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
	"errors"
	"fmt"

	"github.com/db47h/ojson/token"
)

// Sentinel error kinds. Use errors.Is to test a returned error against
// these; the concrete types below carry position and text detail on top.
var (
	// ErrMalformedJSON means the input violates the grammar in effect
	// (strict RFC 7159, or the documented lenient superset).
	ErrMalformedJSON = errors.New("malformed JSON")
	// ErrUnexpectedEOF is a more specific form of ErrMalformedJSON: the
	// input ended while a value, name, or closing bracket was still
	// expected. errors.Is(err, ErrUnexpectedEOF) also reports true for
	// errors.Is(err, ErrMalformedJSON), since ErrUnexpectedEOF wraps it.
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of JSON input", ErrMalformedJSON)
	// ErrState means the caller invoked an operation that doesn't match
	// the next token, or used a Reader after Close.
	ErrState = errors.New("invalid reader state")
	// ErrNumericConversion means a literal could not be coerced to the
	// requested numeric type, or the coercion would be lossy.
	ErrNumericConversion = errors.New("numeric conversion failed")
)

// SyntaxError reports a malformed-JSON condition at a specific position.
type SyntaxError struct {
	Msg string
	Pos token.Position
	eof bool
}

func (e *SyntaxError) Error() string { return e.Msg + e.Pos.String() }

// Unwrap lets errors.Is(err, ErrMalformedJSON) and, for truncated input,
// errors.Is(err, ErrUnexpectedEOF) succeed.
func (e *SyntaxError) Unwrap() error {
	if e.eof {
		return ErrUnexpectedEOF
	}
	return ErrMalformedJSON
}

func (r *Reader) syntaxErrorf(eof bool, format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: r.position(), eof: eof}
}

// StateError reports an API call that does not match the reader's current
// state: beginArray when the next token isn't '[', or operating past
// Close.
type StateError struct {
	Msg string
	Pos token.Position
}

func (e *StateError) Error() string { return e.Msg + e.Pos.String() }

func (e *StateError) Unwrap() error { return ErrState }

func (r *Reader) stateErrorf(format string, args ...any) error {
	return &StateError{Msg: fmt.Sprintf(format, args...), Pos: r.position()}
}

// NumericConversionError reports that a literal's textual form could not be
// coerced to the requested numeric type without loss.
type NumericConversionError struct {
	Msg string
	Pos token.Position
}

func (e *NumericConversionError) Error() string { return e.Msg + e.Pos.String() }

func (e *NumericConversionError) Unwrap() error { return ErrNumericConversion }

func (r *Reader) numericErrorf(format string, args ...any) error {
	return &NumericConversionError{Msg: fmt.Sprintf(format, args...), Pos: r.position()}
}
