// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the node and its in-order index or nil, -1 if not found
func (tree *Tree) Search(key Item) (*Node, int) {
	index := 0
	for p := tree.root; nil != p; {
		switch compare(p.key, key) {
		case +1: // p.key > key
			p = p.child[left]
		case -1: // p.key < key
			index += p.nodes[left] + 1
			p = p.child[right]
		default:
			return p, index + p.nodes[left]
		}
	}
	return nil, -1
}

// internal: findByKey
func (tree *Tree) find(key Item) *Node {
	p, _ := tree.Search(key)
	return p
}
