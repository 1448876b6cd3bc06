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
Package orderedmap implements Map, an associative container whose iteration
order equals insertion order, backed by a hash table of small AVL trees
rather than Go's built-in map. Each bucket holds every key that hashes to
it as a balanced binary search tree keyed by a caller-supplied comparator,
so lookup stays O(log k) even under heavy hash collision; a second,
intrusive doubly-linked list threaded through the same nodes preserves
insertion order independently of the tree shape.

This trades away the O(1) amortized lookup of Go's map for a guarantee Go's
map does not offer at all: stable, replayable iteration order. It is no
relation to the ojson tokenizer package beyond living in the same module.

New derives bucket placement automatically via hash/maphash, so it only
ever needs ordering information from the caller: none, for a K with a
natural comparison, or an explicit Comparator through NewFunc otherwise.
*/
package orderedmap
