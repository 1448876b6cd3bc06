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

import (
	"cmp"
	"hash/maphash"
)

// node is both a binary-tree node (left, right, parent, height) and a
// doubly-linked list node (next, prev). The list is circular through a
// dedicated header node held by Map, so list traversal never needs a nil
// check at the ends.
type node[K comparable, V any] struct {
	key   K
	value V
	hash  uint32

	height               int
	left, right, parent  *node[K, V]

	next, prev *node[K, V]
}

func height[K comparable, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// secondaryHash spreads the bits of a key's maphash-derived hash so that hash
// codes which only differ in high bits still land in different buckets at
// small table sizes. This is Doug Lea's mix, the same one java.util.HashMap
// and Gson's LinkedTreeMap apply before masking into a bucket index.
func secondaryHash(h uint32) uint32 {
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}

// Comparator implements a total order over K: negative if a orders before
// b, zero if a and b are the same key, positive otherwise.
type Comparator[K any] func(a, b K) int

// Map is an associative container that iterates in insertion order. Keys
// are compared with a Comparator, not ==, within a bucket; two keys for
// which the comparator returns 0 are the same entry only when they also
// hash to the same bucket. Hashing, used only to pick a bucket, is derived automatically from the
// key's memory representation via hash/maphash and never needs to be
// supplied by the caller — it is consistency with the comparator that
// matters, not which hash is used, since a comparator mismatch would only
// ever manifest as two "equal" keys occupying different buckets, which the
// AVL lookup inside a bucket can't see across.
//
// The zero value is not usable; construct with New or NewFunc.
type Map[K comparable, V any] struct {
	compare Comparator[K]
	seed    maphash.Seed

	table []*node[K, V]
	size  int

	// header is the sentinel of the circular insertion-order list.
	// header.next is the oldest surviving entry, header.prev the newest.
	header *node[K, V]

	modCount int
}

// New creates an empty Map ordered by K's natural comparison. Use
// WithComparator to override the ordering (for example, to reverse it) or
// NewFunc for a K that has no natural order.
func New[K cmp.Ordered, V any](opts ...Option[K, V]) *Map[K, V] {
	return newMap[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates an empty Map ordered by compare, for key types with no
// natural ordering.
func NewFunc[K comparable, V any](compare Comparator[K], opts ...Option[K, V]) *Map[K, V] {
	return newMap[K, V](compare, opts...)
}

func newMap[K comparable, V any](defaultCompare Comparator[K], opts ...Option[K, V]) *Map[K, V] {
	o := options[K, V]{initialCapacity: defaultInitialCapacity, comparator: defaultCompare}
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map[K, V]{
		compare: o.comparator,
		seed:    maphash.MakeSeed(),
		table:   make([]*node[K, V], o.initialCapacity),
	}
	m.header = new(node[K, V])
	m.header.next = m.header
	m.header.prev = m.header
	return m
}

func (m *Map[K, V]) hashKey(key K) uint32 {
	return uint32(maphash.Comparable(m.seed, key))
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// Clear removes every entry, resetting the bucket table to the default
// capacity (a WithInitialCapacity given at construction is not reapplied).
func (m *Map[K, V]) Clear() {
	m.table = make([]*node[K, V], defaultInitialCapacity)
	m.header.next = m.header
	m.header.prev = m.header
	m.size = 0
	m.modCount++
}

// threshold is the size at which the next insertion triggers a resize: 3/4
// of the current bucket table length, matching java.util.HashMap's default
// load factor.
func (m *Map[K, V]) threshold() int { return (len(m.table) * 3) / 4 }

// bucketIndex returns the table slot for a (pre-mixed) hash code.
func (m *Map[K, V]) bucketIndex(h uint32) int {
	return int(h) & (len(m.table) - 1)
}

// lookup returns the node for key, or nil if absent. It does not mutate the
// map.
func (m *Map[K, V]) lookup(key K) *node[K, V] {
	h := secondaryHash(m.hashKey(key))
	n := m.table[m.bucketIndex(h)]
	for n != nil {
		c := m.compare(key, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// findOrCreate returns the existing node for key, or inserts a new one (at
// the tail of the insertion list) if absent. Callers distinguish the two
// cases by comparing m.size before and after the call.
func (m *Map[K, V]) findOrCreate(key K) *node[K, V] {
	h := secondaryHash(m.hashKey(key))
	idx := m.bucketIndex(h)
	root := m.table[idx]

	var nearest *node[K, V]
	var c int
	if root != nil {
		nearest = root
		for {
			c = m.compare(key, nearest.key)
			if c == 0 {
				return nearest
			}
			var child *node[K, V]
			if c < 0 {
				child = nearest.left
			} else {
				child = nearest.right
			}
			if child == nil {
				break
			}
			nearest = child
		}
	}

	n := &node[K, V]{key: key, hash: h, height: 1}
	m.linkTail(n)

	if nearest == nil {
		m.table[idx] = n
	} else {
		n.parent = nearest
		if c < 0 {
			nearest.left = n
		} else {
			nearest.right = n
		}
		m.rebalance(nearest, true)
	}

	m.size++
	m.modCount++
	if m.size > m.threshold() {
		m.doubleCapacity()
	}
	return n
}

// linkTail splices n into the insertion-order list immediately before the
// header, i.e. as the newest entry.
func (m *Map[K, V]) linkTail(n *node[K, V]) {
	n.next = m.header
	n.prev = m.header.prev
	n.prev.next = n
	n.next.prev = n
}

func (m *Map[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// Get returns the value stored for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.lookup(key) != nil
}

// Put inserts or overwrites the value for key. It returns the previous
// value and true if key was already present; otherwise key is appended to
// the end of the iteration order.
func (m *Map[K, V]) Put(key K, value V) (previous V, replaced bool) {
	before := m.size
	n := m.findOrCreate(key)
	if m.size == before {
		previous = n.value
		replaced = true
	}
	n.value = value
	return previous, replaced
}

// Remove deletes key if present, returning its value and true. Removing an
// absent key is a no-op that returns (zero, false).
func (m *Map[K, V]) Remove(key K) (V, bool) {
	n := m.lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}
	v := n.value
	m.removeNode(n)
	return v, true
}

// removeNode detaches n from both the tree and the insertion list,
// rebalancing the tree from n's former parent up to the bucket root.
func (m *Map[K, V]) removeNode(n *node[K, V]) {
	m.unlink(n)
	m.removeFromTree(n)
	m.size--
	m.modCount++
}

// removeFromTree detaches n from its bucket's tree only, leaving the
// insertion list untouched. Used both by removeNode and, on the node
// being relocated into a removed two-child slot, by the grafting logic
// below (where the list position must be preserved).
func (m *Map[K, V]) removeFromTree(n *node[K, V]) {
	left, right := n.left, n.right
	originalParent := n.parent

	switch {
	case left == nil && right == nil:
		m.replaceInParent(n, nil)
	case right == nil:
		m.replaceInParent(n, left)
	case left == nil:
		m.replaceInParent(n, right)
	default:
		var adjacent *node[K, V]
		if height(left) > height(right) {
			adjacent = m.removeRightmost(left)
		} else {
			adjacent = m.removeLeftmost(right)
		}
		// Detaching adjacent rebalanced the tree up through n, which may
		// have rotated n's subtrees: graft whatever n holds now.
		left, right = n.left, n.right

		var newLeft *node[K, V]
		if left == nil {
			newLeft = adjacent.left
		} else {
			adjacent.left = left
			left.parent = adjacent
			newLeft = left
		}

		var newRight *node[K, V]
		if right == nil {
			newRight = adjacent.right
		} else {
			adjacent.right = right
			right.parent = adjacent
			newRight = right
		}

		adjacent.height = max(height(newLeft), height(newRight)) + 1
		m.replaceInParent(n, adjacent)
	}

	n.left, n.right = nil, nil
	m.rebalance(originalParent, false)
}

// removeLeftmost detaches and returns the leftmost descendant of n,
// grafting its (necessarily absent on the left) right subtree into its
// former slot.
func (m *Map[K, V]) removeLeftmost(n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	m.removeFromTree(n)
	n.right = nil
	n.parent = nil
	return n
}

// removeRightmost is the mirror of removeLeftmost.
func (m *Map[K, V]) removeRightmost(n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	m.removeFromTree(n)
	n.left = nil
	n.parent = nil
	return n
}

// replaceInParent rewires n's parent (or bucket slot, if n was a bucket
// root) to point at replacement instead of n. n itself is left untouched
// apart from having its parent cleared.
func (m *Map[K, V]) replaceInParent(n, replacement *node[K, V]) {
	parent := n.parent
	n.parent = nil
	if replacement != nil {
		replacement.parent = parent
	}
	if parent == nil {
		m.table[m.bucketIndex(n.hash)] = replacement
		return
	}
	if parent.left == n {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
}

// rebalance walks from n up to its bucket root, restoring the AVL height
// invariant at each level. On insertion it stops at the first node whose
// rotation (or no-op) restores balance, since insertion can only unbalance
// one level at a time above the point where it grew a subtree. On removal
// it must continue all the way to the root: removing an entry can shrink a
// subtree's height, which can in turn unbalance its grandparent even after
// its immediate parent is already balanced.
func (m *Map[K, V]) rebalance(n *node[K, V], insert bool) {
	for ; n != nil; n = n.parent {
		left, right := n.left, n.right
		leftHeight, rightHeight := height(left), height(right)
		delta := leftHeight - rightHeight

		switch {
		case delta == -2:
			rightLeft, rightRight := right.left, right.right
			rightDelta := height(rightLeft) - height(rightRight)
			if rightDelta == -1 || (rightDelta == 0 && !insert) {
				m.rotateLeft(n)
			} else {
				m.rotateRight(right)
				m.rotateLeft(n)
			}
			if insert {
				return
			}
		case delta == 2:
			leftLeft, leftRight := left.left, left.right
			leftDelta := height(leftLeft) - height(leftRight)
			if leftDelta == 1 || (leftDelta == 0 && !insert) {
				m.rotateRight(n)
			} else {
				m.rotateLeft(left)
				m.rotateRight(n)
			}
			if insert {
				return
			}
		case delta == 0:
			n.height = leftHeight + 1
			if insert {
				return
			}
		default:
			n.height = max(leftHeight, rightHeight) + 1
		}
	}
}

// rotateLeft performs a standard AVL left rotation around root, promoting
// root.right into root's former slot.
func (m *Map[K, V]) rotateLeft(root *node[K, V]) {
	left := root.left
	pivot := root.right
	pivotLeft := pivot.left
	pivotRight := pivot.right

	root.right = pivotLeft
	if pivotLeft != nil {
		pivotLeft.parent = root
	}

	m.replaceInParent(root, pivot)

	pivot.left = root
	root.parent = pivot

	root.height = max(height(left), height(pivotLeft)) + 1
	pivot.height = max(height(root), height(pivotRight)) + 1
}

// rotateRight is the mirror of rotateLeft.
func (m *Map[K, V]) rotateRight(root *node[K, V]) {
	right := root.right
	pivot := root.left
	pivotLeft := pivot.left
	pivotRight := pivot.right

	root.left = pivotRight
	if pivotRight != nil {
		pivotRight.parent = root
	}

	m.replaceInParent(root, pivot)

	pivot.right = root
	root.parent = pivot

	root.height = max(height(right), height(pivotRight)) + 1
	pivot.height = max(height(root), height(pivotLeft)) + 1
}

// Clone returns a new Map with the same comparator and entries, in the
// same iteration order. Values are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := NewFunc[K, V](m.compare, WithInitialCapacity[K, V](len(m.table)))
	for n := m.header.next; n != m.header; n = n.next {
		c.Put(n.key, n.value)
	}
	return c
}
