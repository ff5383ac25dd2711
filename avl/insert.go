// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, an existing key has its
// value overwritten
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count = 1
		return true
	}

	p := tree.root
	s := left
search:
	for {
		switch compare(p.key, key) {
		case +1: // p.key > key
			s = left
		case -1: // p.key < key
			s = right
		default:
			p.value = value
			return false
		}
		if nil == p.child[s] {
			break search
		}
		p = p.child[s]
	}

	n := newNode(key, value, p)
	p.child[s] = n
	tree.count += 1
	for c, q := n, p; nil != q; c, q = q, q.up {
		q.nodes[q.sideOf(c)] += 1
	}

	// p already had one child so is now full, height did not change
	if 0 != p.balance {
		p.balance = 0
		return true
	}

	p.balance = s.sign()
	tree.insertFix(p, n)
	return true
}

// internal: p's sub-tree has grown by one level through its child n
func (tree *Tree) insertFix(p *Node, n *Node) {
	if nil == p || nil == p.up {
		return
	}
	g := p.up
	s := g.sideOf(p)
	g.balance += s.sign()

	switch g.balance {
	case 0:
		return
	case -1, +1:
		tree.insertFix(g, p)
		return
	}

	// g.balance is ±2 with s the heavy side
	if checkZigZig(g, p, n) {
		tree.rotate(g, s.opposite())
		p.balance = 0
		g.balance = 0
		return
	}
	tree.doubleRotate(g, p, n, s)
}
