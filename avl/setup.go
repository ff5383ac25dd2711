// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	hl := height(p.child[left])
	hr := height(p.child[right])
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		return []*Node{p}
	}
	for _, c := range p.child {
		if nil != c {
			nodes = append(nodes, c.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int8 {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.child[left]
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.child[right]
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}
