// Copyright (c) 2014-2017 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item in key order
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	p := tree.root
	for nil != p {
		nl := p.nodes[left]
		if index < nl {
			p = p.child[left]
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.child[right]
		} else {
			break
		}
	}
	return p
}
