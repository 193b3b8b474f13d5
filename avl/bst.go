// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// plain binary search tree operations used by the balancing code

// locate the node holding key, nil if not present
func (tree *Tree) internalFind(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// in-order predecessor of a node
func (tree *Tree) predecessor(p *Node) *Node {
	return p.Prev()
}

// put child into the slot of parent that currently holds old
// a nil parent means old was the root
func (tree *Tree) replaceChild(parent *Node, old *Node, child *Node) {
	if nil == parent {
		tree.root = child
	} else if old == parent.left {
		parent.left = child
	} else {
		parent.right = child
	}
}

// remove a node that has at most one child, the child (if any) takes
// over the node's position, then reclaim the node
func (tree *Tree) del(q *Node) {
	child := q.left
	if nil == child {
		child = q.right
	}
	if nil != child {
		child.up = q.up
	}
	tree.replaceChild(q.up, q, child)
	tree.count -= 1
	freeNode(q)
}

// exchange the structural positions of two nodes
//
// key and value stay with their node, the balance factor stays with
// the position
func (tree *Tree) nodeSwap(n1 *Node, n2 *Node) {
	if n1 == n2 {
		return
	}

	// when adjacent make n1 the parent
	if n1.up == n2 {
		n1, n2 = n2, n1
	}

	n1p, n1l, n1r := n1.up, n1.left, n1.right
	n2p, n2l, n2r := n2.up, n2.left, n2.right
	n1IsLeft := n1.isLeft()
	n2IsLeft := n2.isLeft()

	if n2p == n1 {
		n2.up = n1p
		if n1l == n2 {
			n2.left = n1
			n2.right = n1r
		} else {
			n2.left = n1l
			n2.right = n1
		}
	} else {
		n2.up = n1p
		n2.left = n1l
		n2.right = n1r

		n1.up = n2p
		if nil == n2p {
			tree.root = n1
		} else if n2IsLeft {
			n2p.left = n1
		} else {
			n2p.right = n1
		}
	}
	n1.left = n2l
	n1.right = n2r

	if nil == n1p {
		tree.root = n2
	} else if n1IsLeft {
		n1p.left = n2
	} else {
		n1p.right = n2
	}

	for _, c := range []*Node{n1.left, n1.right} {
		if nil != c {
			c.up = n1
		}
	}
	for _, c := range []*Node{n2.left, n2.right} {
		if nil != c {
			c.up = n2
		}
	}

	n1.balance, n2.balance = n2.balance, n1.balance
}
