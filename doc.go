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

/*
Package ojson implements a pull-based, allocation-light streaming JSON
tokenizer (Reader). A companion package, orderedmap, implements the
insertion-ordered AVL map used to decode JSON objects while preserving
field order.

Peek and consume

Reader follows a peek/consume discipline: Peek classifies the next token
without advancing the input, memoizing the result on the Reader; the
various Next* methods assert that the memoized kind matches what they
expect, consume it, and clear the memo. This is the explicit-state
rendering of what a recursive-descent parser would otherwise do with an
implicit one-token lookahead buffer — there is no hidden coroutine state,
only the peeked field and its auxiliaries.

Strict and lenient modes

By default Reader parses exactly RFC 7159. SetLenient(true) additionally
accepts a documented relaxed superset: a non-execute prefix, comments,
unquoted and single-quoted strings, NaN/Infinity, and a handful of
alternate separators. Every lenient-only code path is gated by a single
checkLenient call.
*/
package ojson
