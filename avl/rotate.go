// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
)

// single right rotation: the left child takes the place of n
//
//	     n            lc
//	    / \          /  \
//	  lc   c   →    a    n
//	 /  \               / \
//	a   lrc           lrc  c
//
// balance factors are left for the caller to set
func (tree *Tree) rotateRight(n *Node) {
	lc := n.left
	if nil == lc {
		fault.Panicf("avl: rotate right at: %v without a left child", n.key)
	}
	p := n.up
	lrc := lc.right

	lc.up = p
	lc.right = n
	tree.replaceChild(p, n, lc)

	n.up = lc
	n.left = lrc
	if nil != lrc {
		lrc.up = n
	}
}

// single left rotation: mirror of rotateRight
func (tree *Tree) rotateLeft(n *Node) {
	rc := n.right
	if nil == rc {
		fault.Panicf("avl: rotate left at: %v without a right child", n.key)
	}
	p := n.up
	rlc := rc.left

	rc.up = p
	rc.left = n
	tree.replaceChild(p, n, rc)

	n.up = rc
	n.right = rlc
	if nil != rlc {
		rlc.up = n
	}
}
