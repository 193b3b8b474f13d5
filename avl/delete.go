// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree, an absent key is
// ignored
func (tree *Tree) Remove(key Item) {
	tree.Delete(key)
}

// Delete - removes a specific item from the tree and returns its value
// and true, or nil and false if the key was not present
//
// a node with two children is swapped with its in-order predecessor
// before removal, so the node holding any other key never moves to a
// different address
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	q := tree.internalFind(key)
	if nil == q {
		return nil, false
	}
	value := q.value // preserve the value part

	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, tree.predecessor(q))
	}

	// q now has at most one child
	p := q.up
	diff := int8(0)
	if nil != p {
		if q == p.left {
			diff = +1
		} else {
			diff = -1
		}
	}

	tree.del(q)

	if nil != p {
		tree.removeFix(p, diff)
	}
	return value, true
}

// the balance of n must change by diff because one of its sub-trees
// lost a level, walk upwards until the loss is absorbed
func (tree *Tree) removeFix(n *Node, diff int8) {
	for nil != n {

		// rotations change n's parent so determine the next step first
		p := n.up
		ndiff := int8(0)
		if nil != p {
			if n == p.left {
				ndiff = +1
			} else {
				ndiff = -1
			}
		}

		switch b := n.balance + diff; b {
		case -2:
			c := n.left
			switch c.balance {
			case -1:
				// single LL rotation, height reduced
				tree.rotateRight(n)
				n.balance = 0
				c.balance = 0
			case 0:
				// single LL rotation, height unchanged
				tree.rotateRight(n)
				n.balance = -1
				c.balance = +1
				return
			case +1:
				// double LR rotation
				g := c.right
				tree.rotateLeft(c)
				tree.rotateRight(n)
				switch g.balance {
				case +1:
					n.balance = 0
					c.balance = -1
				case 0:
					n.balance = 0
					c.balance = 0
				case -1:
					n.balance = +1
					c.balance = 0
				}
				g.balance = 0
			}

		case +2:
			c := n.right
			switch c.balance {
			case +1:
				// single RR rotation, height reduced
				tree.rotateLeft(n)
				n.balance = 0
				c.balance = 0
			case 0:
				// single RR rotation, height unchanged
				tree.rotateLeft(n)
				n.balance = +1
				c.balance = -1
				return
			case -1:
				// double RL rotation
				g := c.left
				tree.rotateRight(c)
				tree.rotateLeft(n)
				switch g.balance {
				case -1:
					n.balance = 0
					c.balance = +1
				case 0:
					n.balance = 0
					c.balance = 0
				case +1:
					n.balance = -1
					c.balance = 0
				}
				g.balance = 0
			}

		case -1, +1:
			n.balance = b
			return

		case 0:
			n.balance = 0
		}

		n, diff = p, ndiff
	}
}
