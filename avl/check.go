// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.child[left], p) {
		return false
	}
	return checkup(p.child[right], p)
}

// CheckCounts - check the sub-tree node counts for consistency
func (tree *Tree) CheckCounts() bool {
	n, ok := checkcounts(tree.root)
	return ok && n == tree.count
}

// internal: returns the actual size of the sub-tree
func checkcounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkcounts(p.child[left])
	if !ok || nl != p.nodes[left] {
		return 0, false
	}
	nr, ok := checkcounts(p.child[right])
	if !ok || nr != p.nodes[right] {
		return 0, false
	}
	return 1 + nl + nr, true
}

// CheckTree - verify every structural invariant of the tree
//
// keys strictly ascending in order, parent links, sub-tree counts and
// for every node a balance equal to the right height minus the left
// height, within -1…+1
func (tree *Tree) CheckTree() error {
	var previous *Node
	n, _, err := checktree(tree.root, nil, &previous)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: tree count: %d  actual: %d", fault.ErrNodeCount, tree.count, n)
	}
	return nil
}

// internal: returns size and height of the sub-tree
func checktree(p *Node, up *Node, previous **Node) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fmt.Errorf("%w: node: %v  actual: %v  expected: %v", fault.ErrParentLink, p.key, keyOf(p.up), keyOf(up))
	}

	nl, hl, err := checktree(p.child[left], p, previous)
	if nil != err {
		return 0, 0, err
	}

	if nil != *previous && -1 != compare((*previous).key, p.key) {
		return 0, 0, fmt.Errorf("%w: %v is not before %v", fault.ErrUnorderedKeys, (*previous).key, p.key)
	}
	*previous = p

	nr, hr, err := checktree(p.child[right], p, previous)
	if nil != err {
		return 0, 0, err
	}

	if nl != p.nodes[left] || nr != p.nodes[right] {
		return 0, 0, fmt.Errorf("%w: node: %v  counts: [%d,%d]  actual: [%d,%d]", fault.ErrNodeCount, p.key, p.nodes[left], p.nodes[right], nl, nr)
	}

	b := hr - hl
	if b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: node: %v  heights: [%d,%d]", fault.ErrBalanceOutOfRange, p.key, hl, hr)
	}
	if b != int(p.balance) {
		return 0, 0, fmt.Errorf("%w: node: %v  balance: %+d  actual: %+d", fault.ErrBalanceMismatch, p.key, p.balance, b)
	}

	h := hl
	if hr > h {
		h = hr
	}
	return 1 + nl + nr, 1 + h, nil
}

// key of a possibly nil node
func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
