// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/configuration"
	"github.com/bitmark-inc/avlbst/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Database      databaseType      `gluamapper:"database"`
	Keys          []string          `gluamapper:"keys"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testScript = `
local M = {}
M.data_directory = arg[0]
M.database = {
    directory = "data",
    name = prefix .. ".leveldb",
}
M.keys = { "10", "5", "15" }
M.levels = { DEFAULT = "info", snapshot = "debug" }
return M
`

func writeScript(t *testing.T, script string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(script), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() {
		os.RemoveAll(dir)
	}
}

func TestParse(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{
		"prefix": "testing",
	})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, fileName, config.DataDirectory, "arg[0]")
	assert.Equal(t, "data", config.Database.Directory, "database directory")
	assert.Equal(t, "testing.leveldb", config.Database.Name, "variable substitution")
	assert.Equal(t, []string{"10", "5", "15"}, config.Keys, "list")
	assert.Equal(t, "debug", config.Levels["snapshot"], "map")
}

func TestParseNotPointer(t *testing.T) {
	fileName, cleanup := writeScript(t, testScript)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-struct")
}

func TestParseNoTable(t *testing.T) {
	fileName, cleanup := writeScript(t, "return 42\n")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "number result")
}

func TestParseSyntaxError(t *testing.T) {
	fileName, cleanup := writeScript(t, "local M = {\n")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.NotNil(t, err, "syntax error not detected")
}
