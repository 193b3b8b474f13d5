// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfiguration(t *testing.T) {
	dir, cleanup := tempDirectory(t)
	defer cleanup()

	fileName := writeFile(t, dir, "test.conf", `
local M = {}
M.data_directory = "."
M.database = {
    directory = "snapshots",
    name = "test.leveldb",
}
return M
`)

	config, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")

	assert.Equal(t, filepath.Clean(dir), config.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "snapshots"), config.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "snapshots", "test.leveldb"), config.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), config.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file")

	for _, d := range []string{config.Database.Directory, config.Logging.Directory} {
		info, err := os.Stat(d)
		assert.Nil(t, err, "stat: %s", d)
		assert.True(t, info.IsDir(), "directory: %s", d)
	}
}

func TestGetConfigurationVariable(t *testing.T) {
	dir, cleanup := tempDirectory(t)
	defer cleanup()

	fileName := writeFile(t, dir, "test.conf", `
return {
    data_directory = config_directory,
}
`)

	config, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")
	assert.Equal(t, filepath.Clean(dir), config.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultSnapshotDatabase), config.Database.Name, "default database")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, cleanup := tempDirectory(t)
	defer cleanup()

	scripts := map[string]string{
		"no-directory.conf": `return { data_directory = "" }`,
		"missing.conf":      `return { data_directory = "` + filepath.Join(dir, "absent") + `" }`,
		"path-name.conf":    `return { data_directory = ".", database = { name = "sub/x.leveldb" } }`,
		"not-table.conf":    `return 42`,
		"syntax.conf":       `return {`,
	}

	for name, script := range scripts {
		fileName := writeFile(t, dir, name, script)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "configuration: %s", name)
	}
}
