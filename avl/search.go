// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
)

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return tree.internalFind(key)
}

// Get - the value stored for a key
func (tree *Tree) Get(key Item) (interface{}, error) {
	p := tree.internalFind(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Has - true if the key is present
func (tree *Tree) Has(key Item) bool {
	return nil != tree.internalFind(key)
}
