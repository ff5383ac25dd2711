// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns the value of the removed item or nil if the key was not found
func (tree *Tree) Delete(key Item) interface{} {
	n := tree.find(key)
	if nil == n {
		return nil
	}
	value := n.value // preserve the value part

	// move to a position with at most one child
	if nil != n.child[left] && nil != n.child[right] {
		tree.nodeSwap(n, n.child[left].last())
	}

	p := n.up
	diff := n.shrinkDiff()

	for c, q := n, p; nil != q; c, q = q, q.up {
		q.nodes[q.sideOf(c)] -= 1
	}

	child := n.child[left]
	if nil == child {
		child = n.child[right]
	}
	if nil == p {
		tree.root = child
	} else {
		p.child[p.sideOf(n)] = child
	}
	if nil != child {
		child.up = p
	}

	tree.count -= 1
	freeNode(n)

	tree.removeFix(p, diff)
	return value
}

// internal: n's sub-tree on one side has shrunk, diff is the resulting
// change to n's balance
func (tree *Tree) removeFix(n *Node, diff int8) {
	if nil == n {
		return
	}

	// before any rotation moves n
	p := n.up
	ndiff := n.shrinkDiff()

	switch b := n.balance + diff; b {
	case -2, +2:
		heavy := heavySide(b)
		c := n.child[heavy]
		rc := removeCases[heavy][c.balance+1]
		if rc.double {
			tree.doubleRotate(n, c, c.child[heavy.opposite()], heavy)
		} else {
			tree.rotate(n, heavy.opposite())
			n.balance = rc.top
			c.balance = rc.child
		}
		if rc.propagate {
			tree.removeFix(p, ndiff)
		}
	case -1, +1:
		// height unchanged
		n.balance = b
	default:
		n.balance = 0
		tree.removeFix(p, ndiff)
	}
}
