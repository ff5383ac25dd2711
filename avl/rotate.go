// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate g towards dir: the child of g on the opposite side takes the
// place of g and g becomes its child on the dir side.  The sub-tree
// between them changes parent.  Balance factors are left unchanged,
// the caller sets them for its particular case.
func (tree *Tree) rotate(g *Node, dir side) {
	from := dir.opposite()
	p := g.child[from]
	t := p.child[dir] // transferred sub-tree, possibly nil

	up := g.up
	if nil == up {
		tree.root = p
	} else {
		up.child[up.sideOf(g)] = p
	}
	p.up = up

	g.child[from] = t
	g.nodes[from] = p.nodes[dir]
	if nil != t {
		t.up = g
	}

	p.child[dir] = g
	p.nodes[dir] = 1 + g.nodes[left] + g.nodes[right]
	g.up = p
}

// rotateRight - promote the left child of g
func (tree *Tree) rotateRight(g *Node) {
	tree.rotate(g, right)
}

// rotateLeft - promote the right child of g
func (tree *Tree) rotateLeft(g *Node) {
	tree.rotate(g, left)
}

// true if n is on the same side of p as p is of g
func checkZigZig(g *Node, p *Node, n *Node) bool {
	if g.child[left] == p && p.child[left] == n {
		return true
	}
	return g.child[right] == p && p.child[right] == n
}

// exchange the places of two nodes in the tree; links and sub-tree
// counts are positional so they change hands, key and value stay with
// their node
func (tree *Tree) swapPositions(a *Node, b *Node) {
	if a == b {
		return
	}
	// if adjacent, make b the child
	if a.up == b {
		a, b = b, a
	}

	aUp, aChild := a.up, a.child
	bUp, bChild := b.up, b.child

	var aSide, bSide side
	if nil != aUp {
		aSide = aUp.sideOf(a)
	}
	if nil != bUp {
		bSide = bUp.sideOf(b)
	}

	a.nodes, b.nodes = b.nodes, a.nodes

	if bUp == a {
		b.child = aChild
		b.child[bSide] = a
		a.child = bChild
		a.up = b
	} else {
		b.child = aChild
		a.child = bChild
		a.up = bUp
		if nil == bUp {
			tree.root = a
		} else {
			bUp.child[bSide] = a
		}
	}

	b.up = aUp
	if nil == aUp {
		tree.root = b
	} else {
		aUp.child[aSide] = b
	}

	for _, c := range a.child {
		if nil != c {
			c.up = a
		}
	}
	for _, c := range b.child {
		if nil != c {
			c.up = b
		}
	}
}

// swap two nodes for removal: positions move through swapPositions and
// the balance factor, being positional too, is exchanged here
func (tree *Tree) nodeSwap(n1 *Node, n2 *Node) {
	tree.swapPositions(n1, n2)
	n1.balance, n2.balance = n2.balance, n1.balance
}

// final balances after a double rotation, indexed by the heavy side and
// by the pre-rotation balance (+1 offset) of the grandchild that ends
// up on top; the grandchild itself always becomes 0
var doubleRotation = [2][3]struct {
	top   int8 // the node that was unbalanced
	child int8 // its child on the heavy side
}{
	left: {
		{top: +1, child: 0}, // grandchild -1
		{top: 0, child: 0},  // grandchild  0
		{top: 0, child: -1}, // grandchild +1
	},
	right: {
		{top: 0, child: +1}, // grandchild -1
		{top: 0, child: 0},  // grandchild  0
		{top: -1, child: 0}, // grandchild +1
	},
}

// how removeFix treats an unbalanced node, indexed by the heavy side
// and by the balance (+1 offset) of the child on that side
type removeCase struct {
	double    bool // rotate the child first, then the node
	top       int8 // single rotation: new balance of the node
	child     int8 // single rotation: new balance of the child
	propagate bool // sub-tree height shrank so continue upwards
}

var removeCases = [2][3]removeCase{
	left: {
		{top: 0, child: 0, propagate: true},    // child -1
		{top: -1, child: +1, propagate: false}, // child  0
		{double: true, propagate: true},        // child +1
	},
	right: {
		{double: true, propagate: true},        // child -1
		{top: +1, child: -1, propagate: false}, // child  0
		{top: 0, child: 0, propagate: true},    // child +1
	},
}

// rotate twice around top with the grandchild g ending up on top,
// then set all three balances from the table
func (tree *Tree) doubleRotate(top *Node, c *Node, g *Node, heavy side) {
	entry := doubleRotation[heavy][g.balance+1]
	tree.rotate(c, heavy)
	tree.rotate(top, heavy.opposite())
	top.balance = entry.top
	c.balance = entry.child
	g.balance = 0
}
