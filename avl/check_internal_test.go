// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/fault"
)

// a broken parent link is reported through the return values only
func TestBrokenParentLinkIsSilent(t *testing.T) {
	tree := New()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(IntItem(k), k)
	}
	saved := tree.root.left.up
	tree.root.left.up = tree.root.right
	defer func() {
		tree.root.left.up = saved
	}()

	r, w, err := os.Pipe()
	if nil != err {
		t.Fatalf("pipe error: %s", err)
	}
	stdout := os.Stdout
	os.Stdout = w

	ok := tree.CheckUp()
	checkErr := tree.Check()

	os.Stdout = stdout
	w.Close()
	output, _ := ioutil.ReadAll(r)
	r.Close()

	assert.False(t, ok, "check up")
	assert.Equal(t, fault.ErrParentLinkBroken, checkErr, "check")
	assert.Equal(t, "", string(output), "nothing written to stdout")
}
