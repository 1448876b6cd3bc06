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

package token_test

import (
	"testing"

	"github.com/db47h/ojson/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k    token.Kind
		want string
	}{
		{token.None, "None"},
		{token.BeginObject, "BeginObject"},
		{token.EndArray, "EndArray"},
		{token.DoubleQuotedName, "DoubleQuotedName"},
		{token.Long, "Long"},
		{token.Number, "Number"},
		{token.EOF, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	k := token.Kind(999)
	want := "Kind(999)"
	if got := k.String(); got != want {
		t.Errorf("Kind(999).String() = %q, want %q", got, want)
	}

	k = token.Kind(-1)
	want = "Kind(-1)"
	if got := k.String(); got != want {
		t.Errorf("Kind(-1).String() = %q, want %q", got, want)
	}
}
