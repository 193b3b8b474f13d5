// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node carries a balance factor, height(right) - height(left),
// which is kept in the range -1…+1.  After an insert or a delete the
// change in height is propagated upwards along the parent pointers
// and a single or double rotation is applied where a factor would
// reach ±2.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around; a node with two children changes places with its
// in-order predecessor, so that previous nodes can be deleted during
// iteration.
package avl
