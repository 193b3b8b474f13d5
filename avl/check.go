// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
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
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify all the tree invariants: parent links, strictly
// ascending keys, stored balance equal to the height difference of
// the sub-trees and within -1…+1, and the node count
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ErrRootHasParent
	}
	if !checkup(tree.root, nil) {
		return fault.ErrParentLinkBroken
	}

	_, err := checkBalance(tree.root)
	if nil != err {
		return err
	}

	n := 0
	previous := (*Node)(nil)
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && -1 != previous.key.Compare(p.key) {
			return fault.ErrKeyOrder
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// returns the height of the sub-tree
func checkBalance(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	d := r - l
	if d < -1 || d > 1 {
		return 0, fault.ErrNotBalanced
	}
	if d != int(p.balance) {
		return 0, fault.ErrBalanceMismatch
	}
	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}
