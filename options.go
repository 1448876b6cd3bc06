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

// options holds the configuration assembled from a New call's Option
// arguments, mirroring the functional-options shape of lexer.Option in the
// teacher package.
type options struct {
	lenient      bool
	bufferSize   int
	errorHandler func(*Reader, error)
}

// An Option configures a Reader at construction time.
type Option func(*options)

// WithLenient starts the Reader in (or out of) lenient mode. Equivalent to
// calling SetLenient immediately after New, provided as an Option for
// symmetry with the rest of the configuration surface.
func WithLenient(lenient bool) Option {
	return func(o *options) { o.lenient = lenient }
}

// WithBufferSize overrides the tokenizer's lookahead buffer capacity. The
// buffer must be able to hold the longest token reportable as a number
// without allocation; sizes below minBufferSize are rounded up.
func WithBufferSize(n int) Option {
	return func(o *options) { o.bufferSize = n }
}

// WithErrorHandler registers a callback invoked whenever the underlying
// source.Source returns an I/O error other than io.EOF. If unset, the error
// is simply returned to the caller of the operation in progress, the same
// as any other error.
func WithErrorHandler(f func(*Reader, error)) Option {
	return func(o *options) { o.errorHandler = f }
}

func defaultOptions() options {
	return options{bufferSize: defaultBufferSize}
}
