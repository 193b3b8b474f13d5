// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/paths"
)

// Shape - copy the structure of the tree into plain binary nodes
func (tree *Tree) Shape() *paths.Node {
	return shape(tree.root)
}

func shape(p *Node) *paths.Node {
	if nil == p {
		return nil
	}
	return &paths.Node{
		Left:  shape(p.left),
		Right: shape(p.right),
	}
}
