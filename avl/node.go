// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 as the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// which child link of a node
type side int

const (
	left  side = 0
	right side = 1
)

// the other side
func (s side) opposite() side {
	return 1 - s
}

// balance contribution of growing this side
func (s side) sign() int8 {
	if left == s {
		return -1
	}
	return +1
}

// the heavy side of a balance of ±2
func heavySide(balance int8) side {
	if balance < 0 {
		return left
	}
	return right
}

// Node - a node in the tree
type Node struct {
	child   [2]*Node    // left and right sub-trees
	up      *Node       // points to parent node
	nodes   [2]int      // number of nodes in each sub-tree
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // -1, 0, +1
}

// create a new node attached below parent
func newNode(key Item, value interface{}, parent *Node) *Node {
	return &Node{
		up:      parent,
		key:     key,
		value:   value,
		balance: 0,
	}
}

// release a node that has been unlinked from its tree
func freeNode(node *Node) {
	node.child[left] = nil
	node.child[right] = nil
	node.up = nil
	node.nodes[left] = 0
	node.nodes[right] = 0
	node.key = nil
	node.value = nil
	node.balance = 0
}

// which side of p holds the child c
// c must be a child of p
func (p *Node) sideOf(c *Node) side {
	if p.child[left] == c {
		return left
	}
	return right
}

// the balance correction a parent receives when this node's sub-tree
// shrinks: +1 when it is a left child, -1 when right, 0 for the root
func (p *Node) shrinkDiff() int8 {
	if nil == p.up {
		return 0
	}
	return -p.up.sideOf(p).sign()
}

// compare two keys, the result must be one of -1, 0, +1
func compare(a Item, b Item) int {
	c := a.Compare(b)
	switch c {
	case -1, 0, +1:
		return c
	default:
		panic(fault.ErrKeyOrder)
	}
}
