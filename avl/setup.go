// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

// Height - number of levels in the tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - remove every node, returning them to the pool
func (tree *Tree) Clear() {
	clearNodes(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order so children are reclaimed before their parent
func clearNodes(p *Node) {
	if nil == p {
		return
	}
	clearNodes(p.left)
	clearNodes(p.right)
	freeNode(p)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}
