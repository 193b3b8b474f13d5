// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/util"
)

const watchTimeout = 5 * time.Second

func TestWatcherEvents(t *testing.T) {
	dir, cleanup := tempDirectory(t)
	defer cleanup()

	fileName := writeFile(t, dir, "ops.txt", "+1\n")

	w, err := newFileWatcher(fileName, logger.New("test"))
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()

	err = w.Start()
	assert.Nil(t, err, "start")

	// unrelated files in the same directory are ignored
	writeFile(t, dir, "other.txt", "+2\n")

	err = ioutil.WriteFile(fileName, []byte("+1 +2\n"), 0600)
	assert.Nil(t, err, "write")

	select {
	case <-w.change:
	case <-time.After(watchTimeout):
		t.Fatal("no change event")
	}

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove")

	for {
		select {
		case <-w.change:
			// a late write event may still be queued
			continue
		case <-w.remove:
		case <-time.After(watchTimeout):
			t.Fatal("no remove event")
		}
		break
	}
}

// saving by renaming the old file to a backup and writing a new one
// must keep the watch going
func TestWatcherRenameAndRewrite(t *testing.T) {
	dir, cleanup := tempDirectory(t)
	defer cleanup()

	fileName := writeFile(t, dir, "ops.txt", "+1\n")

	w, err := newFileWatcher(fileName, logger.New("test"))
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()

	err = w.Start()
	assert.Nil(t, err, "start")

	err = os.Rename(fileName, fileName+"~")
	assert.Nil(t, err, "rename to backup")
	err = ioutil.WriteFile(fileName, []byte("+1 +2\n"), 0600)
	assert.Nil(t, err, "write new file")

	changed := false
	deadline := time.After(4 * removeGrace)
loop:
	for {
		select {
		case <-w.change:
			changed = true
		case <-w.remove:
			t.Fatalf("remove signalled while file exists: %t", util.EnsureFileExists(fileName))
		case <-deadline:
			break loop
		}
	}
	assert.True(t, changed, "change after rewrite")
}

func TestWatcherRenameAway(t *testing.T) {
	dir, cleanup := tempDirectory(t)
	defer cleanup()

	fileName := writeFile(t, dir, "ops.txt", "+1\n")

	w, err := newFileWatcher(fileName, logger.New("test"))
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Stop()

	err = w.Start()
	assert.Nil(t, err, "start")

	err = os.Rename(fileName, filepath.Join(dir, "moved.txt"))
	assert.Nil(t, err, "rename")

	select {
	case <-w.remove:
	case <-time.After(watchTimeout):
		t.Fatal("no remove event")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(os.TempDir(), "avltool-absent-file"), logger.New("test"))
	assert.Equal(t, fault.ErrFileNotFound, err, "missing file")
}

func TestEventClassification(t *testing.T) {
	assert.True(t, isChangeEvent(fsnotify.Event{Op: fsnotify.Write}), "write")
	assert.True(t, isChangeEvent(fsnotify.Event{Op: fsnotify.Create}), "create")
	assert.False(t, isChangeEvent(fsnotify.Event{Op: fsnotify.Chmod}), "chmod")
	assert.True(t, isRemoveEvent(fsnotify.Event{Op: fsnotify.Remove}), "remove")
	assert.True(t, isRemoveEvent(fsnotify.Event{Op: fsnotify.Rename}), "rename")
	assert.False(t, isRemoveEvent(fsnotify.Event{Op: fsnotify.Write}), "write")
}
