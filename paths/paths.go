// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paths - check whether every root to leaf path of a binary
// tree has the same length
package paths

// Node - a plain binary tree node, no ordering is required
type Node struct {
	Left  *Node
	Right *Node
}

// EqualPaths - true if all the paths from root to a leaf are the same
// length
//
// a node with only one child is not compared against its empty side,
// only the sub-tree that is present has to satisfy the property
func EqualPaths(root *Node) bool {
	if nil == root {
		return true
	}
	if !EqualPaths(root.Left) || !EqualPaths(root.Right) {
		return false
	}
	if nil == root.Left || nil == root.Right {
		return true
	}
	return Height(root.Left) == Height(root.Right)
}

// Height - number of levels below and including root
func Height(root *Node) int {
	if nil == root {
		return 0
	}
	h := 1
	if nil != root.Left {
		if l := Height(root.Left) + 1; l > h {
			h = l
		}
	}
	if nil != root.Right {
		if r := Height(root.Right) + 1; r > h {
			h = r
		}
	}
	return h
}
