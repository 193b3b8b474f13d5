// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/util"
)

// how long a removed file has to reappear before the watch ends
const removeGrace = 250 * time.Millisecond

// signal changes to a single operations file
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - watch the parent directory, so a file that is renamed away
// and written again, as some editors save, keeps being followed
//
// a remove or rename only counts as removal if the file is still
// missing once removeGrace has passed without it being re-created
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		var pending <-chan time.Time
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.filePath {
					continue
				}
				w.log.Debugf("file event: %v", event)
				if isRemoveEvent(event) {
					if util.EnsureFileExists(w.filePath) {
						w.send(w.change)
					} else {
						pending = time.After(removeGrace)
					}
				} else if isChangeEvent(event) {
					pending = nil
					w.send(w.change)
				}

			case <-pending:
				pending = nil
				if util.EnsureFileExists(w.filePath) {
					w.send(w.change)
				} else {
					w.log.Infof("file: %s removed", w.filePath)
					w.send(w.remove)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watcher, its goroutine exits once the event
// channels close
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

// a pending event already covers this one
func (w *fileWatcher) send(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
