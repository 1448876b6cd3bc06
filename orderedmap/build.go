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

// doubleCapacity grows the bucket table and redistributes every existing
// tree across it. Each bucket's tree is walked in sorted (comparator)
// order, split in two according to the newly-significant hash bit, and
// each half is rebuilt from scratch as a balanced tree directly from its
// sorted run: no per-node comparisons are needed, since the split already
// preserves sort order within each half.
func (m *Map[K, V]) doubleCapacity() {
	old := m.table
	oldCap := len(old)
	newTable := make([]*node[K, V], oldCap*2)

	for i, root := range old {
		if root == nil {
			continue
		}
		items := sortedNodes(root)
		var lo, hi []*node[K, V]
		for _, n := range items {
			n.left, n.right, n.parent = nil, nil, nil
			if n.hash&uint32(oldCap) == 0 {
				lo = append(lo, n)
			} else {
				hi = append(hi, n)
			}
		}
		newTable[i] = buildBalanced(lo)
		newTable[i+oldCap] = buildBalanced(hi)
	}

	m.table = newTable
}

// sortedNodes returns every node of the tree rooted at root, in ascending
// comparator order, via an iterative in-order traversal with an explicit
// stack. The stack never grows past the tree's height, which is O(log n)
// since every tree here is AVL-balanced.
func sortedNodes[K comparable, V any](root *node[K, V]) []*node[K, V] {
	var out []*node[K, V]
	stack := make([]*node[K, V], 0, height(root))
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		cur = cur.right
	}
	return out
}

// buildBalanced constructs a height-balanced binary search tree directly
// from items, which must already be in ascending comparator order. Always
// picking the midpoint as the subtree root keeps the two sides within one
// element of each other in size at every level, which is sufficient to
// satisfy the AVL height invariant without a single rotation.
func buildBalanced[K comparable, V any](items []*node[K, V]) *node[K, V] {
	if len(items) == 0 {
		return nil
	}
	mid := len(items) / 2
	root := items[mid]
	root.left = buildBalanced(items[:mid])
	root.right = buildBalanced(items[mid+1:])
	if root.left != nil {
		root.left.parent = root
	}
	if root.right != nil {
		root.right.parent = root
	}
	root.height = max(height(root.left), height(root.right)) + 1
	return root
}
