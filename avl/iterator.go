// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	return tree.extreme(left)
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	return tree.extreme(right)
}

// internal: follow links on one side as far as possible
func (tree *Node) extreme(s side) *Node {
	if tree == nil {
		return nil
	}
	for tree.child[s] != nil {
		tree = tree.child[s]
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	return tree.step(right)
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (tree *Node) Prev() *Node {
	return tree.step(left)
}

// internal: in-order neighbour in direction s
func (tree *Node) step(s side) *Node {
	if tree.child[s] != nil {
		return tree.child[s].extreme(s.opposite())
	}
	// climb while coming up from the s side
	for tree.up != nil && tree.up.child[s] == tree {
		tree = tree.up
	}
	return tree.up
}
