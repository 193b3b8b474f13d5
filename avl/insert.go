// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// an existing key has its value overwritten and the tree shape is not
// changed
func (tree *Tree) Insert(key Item, value interface{}) {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return
	}

	p := tree.root
	for {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil != p.left {
				p = p.left
				continue
			}
			p.left = newNode(key, value, p)
			tree.count += 1
			tree.leafAdded(p, p.left, -1)
			return

		case -1: // p.key < key
			if nil != p.right {
				p = p.right
				continue
			}
			p.right = newNode(key, value, p)
			tree.count += 1
			tree.leafAdded(p, p.right, +1)
			return

		default:
			p.value = value
			return
		}
	}
}

// p has just gained the leaf n on side dir (-1 left, +1 right)
func (tree *Tree) leafAdded(p *Node, n *Node, dir int8) {
	if 0 != p.balance {
		// p already had the other child: height unchanged
		p.balance = 0
		return
	}
	p.balance = dir
	tree.insertFix(p, n)
}

// the sub-tree at p has grown by one level because of its child n,
// walk upwards adjusting balance factors until the growth is absorbed
// or a rotation restores the previous height
func (tree *Tree) insertFix(p *Node, n *Node) {
	for {
		g := p.up
		if nil == g {
			return
		}

		if p == g.left {
			// left branch has grown
			g.balance -= 1
			switch g.balance {
			case 0:
				return
			case -1:
				p, n = g, p
				continue
			}

			if -1 == p.balance {
				// single LL rotation
				tree.rotateRight(g)
				g.balance = 0
				p.balance = 0
			} else {
				// double LR rotation
				tree.rotateLeft(p)
				tree.rotateRight(g)
				switch n.balance {
				case -1:
					p.balance = 0
					g.balance = +1
				case 0:
					p.balance = 0
					g.balance = 0
				case +1:
					p.balance = -1
					g.balance = 0
				}
				n.balance = 0
			}
			return
		}

		// right branch has grown
		g.balance += 1
		switch g.balance {
		case 0:
			return
		case +1:
			p, n = g, p
			continue
		}

		if +1 == p.balance {
			// single RR rotation
			tree.rotateLeft(g)
			g.balance = 0
			p.balance = 0
		} else {
			// double RL rotation
			tree.rotateRight(p)
			tree.rotateLeft(g)
			switch n.balance {
			case +1:
				p.balance = 0
				g.balance = -1
			case 0:
				p.balance = 0
				g.balance = 0
			case -1:
				p.balance = +1
				g.balance = 0
			}
			n.balance = 0
		}
		return
	}
}
