// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/avl.leveldb", util.EnsureAbsolute("/data", "avl.leveldb"), "relative file")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log/"), "absolute path")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/x/..", "./log"), "cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "file should not exist yet")

	err = ioutil.WriteFile(name, []byte("x"), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	assert.True(t, util.EnsureFileExists(name), "file should exist")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	d, err := util.EnsureDirectory(dir, "data/snapshots")
	assert.Nil(t, err, "create")
	assert.Equal(t, filepath.Join(dir, "data", "snapshots"), d, "absolute path")

	info, err := os.Stat(d)
	assert.Nil(t, err, "stat")
	assert.True(t, info.IsDir(), "is a directory")

	again, err := util.EnsureDirectory(dir, d)
	assert.Nil(t, err, "existing directory")
	assert.Equal(t, d, again, "unchanged")

	name := filepath.Join(dir, "plain")
	err = ioutil.WriteFile(name, []byte("x"), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	_, err = util.EnsureDirectory(dir, "plain/sub")
	assert.NotNil(t, err, "parent is a file")
}
