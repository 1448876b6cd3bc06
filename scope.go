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
	"strconv"
	"strings"

	"github.com/db47h/ojson/token"
)

// PathComponent is one frame of the structured path accessor beneath
// GetPath's JSONPath string. Exactly one of Name/HasIndex is meaningful: an
// object frame carries Name, an array frame carries Index with HasIndex
// set.
type PathComponent struct {
	Name     string
	Index    int
	HasIndex bool
}

func (r *Reader) pushScope(s scope) {
	r.scopes = append(r.scopes, s)
	r.pathNames = append(r.pathNames, "")
	r.pathIndices = append(r.pathIndices, 0)
}

func (r *Reader) popScope() scope {
	n := len(r.scopes) - 1
	popped := r.scopes[n]
	r.scopes = r.scopes[:n]
	r.pathNames = r.pathNames[:n]
	r.pathIndices = r.pathIndices[:n]
	if n > 0 {
		r.pathIndices[n-1]++
	}
	return popped
}

// advance increments the path index of the current container after a
// scalar, nested array, or nested object has been fully consumed.
func (r *Reader) advance() {
	n := len(r.pathIndices)
	r.pathIndices[n-1]++
}

// BeginArray consumes the structural '[' token.
func (r *Reader) BeginArray() error {
	k, err := r.Peek()
	if err != nil {
		return err
	}
	if k != token.BeginArray {
		return r.stateErrorf("expected BEGIN_ARRAY but was %s", k)
	}
	r.pushScope(scopeEmptyArray)
	r.pathIndices[len(r.pathIndices)-1] = 0
	r.peeked = token.None
	return nil
}

// EndArray consumes the structural ']' token.
func (r *Reader) EndArray() error {
	k, err := r.Peek()
	if err != nil {
		return err
	}
	if k != token.EndArray {
		return r.stateErrorf("expected END_ARRAY but was %s", k)
	}
	r.popScope()
	r.peeked = token.None
	return nil
}

// BeginObject consumes the structural '{' token.
func (r *Reader) BeginObject() error {
	k, err := r.Peek()
	if err != nil {
		return err
	}
	if k != token.BeginObject {
		return r.stateErrorf("expected BEGIN_OBJECT but was %s", k)
	}
	r.pushScope(scopeEmptyObject)
	r.peeked = token.None
	return nil
}

// EndObject consumes the structural '}' token.
func (r *Reader) EndObject() error {
	k, err := r.Peek()
	if err != nil {
		return err
	}
	if k != token.EndObject {
		return r.stateErrorf("expected END_OBJECT but was %s", k)
	}
	r.popScope()
	r.peeked = token.None
	return nil
}

// HasNext reports whether the next token is not the terminating ']' or '}'
// of the current container.
func (r *Reader) HasNext() (bool, error) {
	k, err := r.Peek()
	if err != nil {
		return false, err
	}
	return k != token.EndArray && k != token.EndObject, nil
}

// Path returns a JSONPath-like string trace of the current location.
func (r *Reader) Path() string {
	var b strings.Builder
	b.WriteByte('$')
	for i, s := range r.scopes {
		switch s {
		case scopeEmptyArray, scopeNonemptyArray:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(r.pathIndices[i]))
			b.WriteByte(']')
		case scopeEmptyObject, scopeDanglingName, scopeNonemptyObject:
			if r.pathNames[i] != "" {
				b.WriteByte('.')
				b.WriteString(r.pathNames[i])
			}
		}
	}
	return b.String()
}

// Components returns the same trace as Path, as a slice of structured
// frames rather than a formatted string.
func (r *Reader) Components() []PathComponent {
	out := make([]PathComponent, 0, len(r.scopes))
	for i, s := range r.scopes {
		switch s {
		case scopeEmptyArray, scopeNonemptyArray:
			out = append(out, PathComponent{Index: r.pathIndices[i], HasIndex: true})
		case scopeEmptyObject, scopeDanglingName, scopeNonemptyObject:
			if r.pathNames[i] != "" {
				out = append(out, PathComponent{Name: r.pathNames[i]})
			}
		}
	}
	return out
}

// GetPath returns a JSONPath-like string ($[.name|[idx]]*) reflecting the
// reader's current location.
func (r *Reader) GetPath() string { return r.Path() }
