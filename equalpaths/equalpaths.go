// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check that every leaf of a binary tree is at
// the same depth
//
// A leaf is a node with no children. A node with a single child is
// not a leaf, only its descendants count.
package equalpaths

// Node - a plain binary tree node
type Node struct {
	Left  *Node
	Right *Node
}

// EqualPaths - true if all leaves below root have the same depth
// an empty tree and a single node both pass
func EqualPaths(root *Node) bool {
	return Check(root, func(n *Node) (*Node, *Node) {
		return n.Left, n.Right
	})
}

// Check - true if all leaves below root have the same depth
//
// works over any binary tree whose empty sub-tree is the zero value
// of N, children returns the left and right sub-trees of a node
func Check[N comparable](root N, children func(N) (N, N)) bool {
	var none N
	if none == root {
		return true
	}
	c := checker[N]{children: children}
	return c.walk(root, 0)
}

// state for one traversal: the first leaf met fixes the depth
type checker[N comparable] struct {
	children  func(N) (N, N)
	found     bool
	leafDepth int
}

func (c *checker[N]) walk(n N, depth int) bool {
	var none N
	l, r := c.children(n)
	if none == l && none == r {
		if !c.found {
			c.found = true
			c.leafDepth = depth
			return true
		}
		return depth == c.leafDepth
	}
	if none != l && !c.walk(l, depth+1) {
		return false
	}
	return none == r || c.walk(r, depth+1)
}
