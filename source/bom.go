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

package source

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const byteOrderMark = '﻿'

var stripBOM = runes.Remove(runes.Predicate(func(r rune) bool { return r == byteOrderMark }))

// NormalizeBOM strips a single leading byte-order mark from b, if present,
// and returns the result. The tokenizer itself already swallows a BOM at
// the start of its own buffer unconditionally (spec: "a BOM at buffer
// position 0 on first fill is silently consumed"); NormalizeBOM exists for
// callers who want the same byte slice shared across multiple Readers, or
// who feed text through something other than the tokenizer first (e.g. a
// line splitter) and would otherwise see the BOM show up as a stray rune.
func NormalizeBOM(b []byte) ([]byte, error) {
	if len(b) < 3 || b[0] != 0xEF || b[1] != 0xBB || b[2] != 0xBF {
		return b, nil
	}
	// Transform only the leading BOM itself: stripBOM would happily remove
	// every occurrence of U+FEFF in b, but NormalizeBOM promises to strip
	// just the one at the front and leave a stray BOM elsewhere in the
	// document alone.
	head, _, err := transform.Bytes(stripBOM, b[:3])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(head)+len(b)-3)
	out = append(out, head...)
	out = append(out, b[3:]...)
	return out, nil
}
