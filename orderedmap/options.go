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

// defaultInitialCapacity is the bucket table size a Map starts with. It
// must always be a power of two; doubleCapacity preserves that invariant
// and WithInitialCapacity enforces it on the way in.
const defaultInitialCapacity = 16

type options[K comparable, V any] struct {
	initialCapacity int
	comparator      Comparator[K]
}

// Option configures a Map at construction time.
type Option[K comparable, V any] func(*options[K, V])

// WithInitialCapacity sets the starting bucket table size. n is rounded up
// to the next power of two, with a floor of 1.
func WithInitialCapacity[K comparable, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.initialCapacity = nextPowerOfTwo(n)
	}
}

// WithComparator overrides the ordering New would otherwise derive from
// K's natural comparison, e.g. to get descending iteration-within-bucket
// order (iteration order itself is always insertion order regardless).
func WithComparator[K comparable, V any](compare Comparator[K]) Option[K, V] {
	return func(o *options[K, V]) {
		o.comparator = compare
	}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
