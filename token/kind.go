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

// Package token defines the token-kind and source-position vocabulary
// shared by the ojson tokenizer and its diagnostics.
package token

//go:generate stringer -type Kind

// Kind identifies the next token a Reader's Peek would report, or the kind
// of token just consumed. NONE is reserved for internal bookkeeping: it
// means "no token has been classified yet, peek again".
type Kind int

// The closed set of peek tags the tokenizer can report.
const (
	None Kind = iota
	BeginObject
	EndObject
	BeginArray
	EndArray
	True
	False
	Null
	SingleQuoted
	DoubleQuoted
	Unquoted
	Buffered
	SingleQuotedName
	DoubleQuotedName
	UnquotedName
	Long
	Number
	EOF
)
