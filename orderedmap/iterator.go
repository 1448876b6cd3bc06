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

package orderedmap

import "iter"

// Entry is a key/value pair as produced by Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Iterator walks a Map in insertion order, in the style of
// java.util.Iterator. It is invalidated by any structural modification to
// the map (Put of a new key, Remove, Clear) made since it was created, or
// since its own last call to Remove — Next and Remove panic with
// ErrConcurrentModification in that case, rather than silently producing a
// stale or skipped view; Key and Value do not check. Overwriting the value of an already-present key
// via Put does not invalidate an Iterator, since it changes neither the
// tree nor the list.
type Iterator[K comparable, V any] struct {
	m                *Map[K, V]
	next             *node[K, V]
	current          *node[K, V]
	expectedModCount int
}

// Iterator returns a new Iterator positioned before the oldest entry.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, next: m.header.next, expectedModCount: m.modCount}
}

func (it *Iterator[K, V]) checkModCount() {
	if it.m.modCount != it.expectedModCount {
		panic(ErrConcurrentModification)
	}
}

// Next advances the iterator and reports whether an entry is available.
// It must be called before the first Key/Value access and again before
// every subsequent one.
func (it *Iterator[K, V]) Next() bool {
	it.checkModCount()
	if it.next == it.m.header {
		it.current = nil
		return false
	}
	it.current = it.next
	it.next = it.next.next
	return true
}

// Key returns the key of the entry the last call to Next advanced onto.
// It panics with ErrIteratorExhausted if Next has not been called or
// returned false.
func (it *Iterator[K, V]) Key() K {
	if it.current == nil {
		panic(ErrIteratorExhausted)
	}
	return it.current.key
}

// Value returns the value of the entry the last call to Next advanced
// onto. It panics with ErrIteratorExhausted under the same condition as
// Key.
func (it *Iterator[K, V]) Value() V {
	if it.current == nil {
		panic(ErrIteratorExhausted)
	}
	return it.current.value
}

// Remove deletes the entry last returned by Next from the underlying Map.
// It may be called at most once per call to Next. Unlike a Put or Remove
// made through the Map directly, this does not invalidate the iterator
// itself for subsequent calls.
func (it *Iterator[K, V]) Remove() {
	if it.current == nil {
		panic(ErrIteratorExhausted)
	}
	it.checkModCount()
	it.m.removeNode(it.current)
	it.expectedModCount = it.m.modCount
	it.current = nil
}

// Keys returns an iterator sequence over keys in insertion order. Like
// range over a built-in map, mutating the Map while ranging over the
// sequence is not guarded; use Iterator if that protection is needed.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := m.header.next; n != m.header; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values returns an iterator sequence over values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := m.header.next; n != m.header; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Entries returns an iterator sequence over key/value pairs in insertion
// order.
func (m *Map[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for n := m.header.next; n != m.header; n = n.next {
			if !yield(Entry[K, V]{Key: n.key, Value: n.value}) {
				return
			}
		}
	}
}
