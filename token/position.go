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

package token

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Position describes a 1-based line/column location within a JSON document,
// plus the JSONPath-style trace of the container path leading to it.
//
// Column is a rune index into the line, not a byte offset: the tokenizer
// counts runes as it scans, so this is cheap to maintain incrementally.
type Position struct {
	Line   int
	Column int
	Path   string
}

// String renders p the way every ojson diagnostic ends: " at line L column C
// path P".
func (p Position) String() string {
	return fmt.Sprintf(" at line %d column %d path %s", p.Line, p.Column, p.Path)
}

// Caret renders a two-line "source line / caret pointer" block for line,
// which must be the full text of the line p.Line refers to. It accounts for
// East-Asian wide and fullwidth runes so that the caret lines up visually
// under terminals that render them as two columns, the same reasoning the
// teacher's own token.File.GetLineBytes example applies via
// golang.org/x/text/width.
func (p Position) Caret(line string) string {
	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')

	col := 0
	runeIdx := 0
	for _, r := range line {
		if runeIdx >= p.Column-1 {
			break
		}
		runeIdx++
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}
	}
	b.WriteString(strings.Repeat(" ", col))
	b.WriteByte('^')
	return b.String()
}
