// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/storage"
	"github.com/bitmark-inc/avlbst/util"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "apply", "a", "dump", "d", "check", "c", "clear", "watch", "w":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--yes] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                 (h)  - display this message\n\n")
		fmt.Printf("  version              (v)  - display version string\n\n")

		fmt.Printf("  apply OP...          (a)  - apply operations in order and display the tree\n")
		fmt.Printf("                              OP is: +key=value  +key  -key\n")
		fmt.Printf("                              with a configuration the snapshot is updated\n")
		fmt.Printf("\n")

		fmt.Printf("  dump                 (d)  - display the snapshot tree\n")
		fmt.Printf("\n")

		fmt.Printf("  check                (c)  - verify the snapshot tree\n")
		fmt.Printf("\n")

		fmt.Printf("  clear                     - delete the snapshot, --yes skips the prompt\n")
		fmt.Printf("\n")

		fmt.Printf("  watch FILE           (w)  - apply the operations in FILE each time it is written\n")
		fmt.Printf("\n")

		return true
	}
}

// apply without any configuration, nothing is saved
func processMemoryCommand(w io.Writer, arguments []string) error {
	operations, err := parseOperations(arguments)
	if nil != err {
		return err
	}

	tree := avl.New()
	if err := applyOperations(tree, operations); nil != err {
		return err
	}
	report(w, tree)
	return nil
}

// commands that work on the snapshot database
func processDataCommand(log *logger.L, w io.Writer, arguments []string, theConfiguration *Configuration, confirmed bool) error {

	command := arguments[0]
	arguments = arguments[1:]

	readOnly := storage.ReadWrite
	switch command {
	case "dump", "d", "check", "c":
		readOnly = storage.ReadOnly
	}

	// a read only open of a missing database is an empty snapshot
	if readOnly && !util.EnsureFileExists(theConfiguration.Database.Name) {
		log.Warnf("no snapshot database: %s", theConfiguration.Database.Name)
		return runOnTree(command, w, avl.New())
	}

	store, err := storage.Open(theConfiguration.Database.Name, readOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	codec := storage.StringCodec{}

	switch command {
	case "clear":
		if !confirmed {
			if err := confirm(fmt.Sprintf("delete snapshot: %s", theConfiguration.Database.Name)); nil != err {
				return err
			}
		}
		log.Warnf("clear snapshot: %s", theConfiguration.Database.Name)
		return store.Clear()

	case "watch", "w":
		if 1 != len(arguments) {
			return fmt.Errorf("watch requires exactly one file argument, %d were given", len(arguments))
		}
		return watchOperations(log, w, store, codec, arguments[0])
	}

	tree := avl.New()
	n, err := store.Load(tree, codec)
	if nil != err {
		return err
	}
	log.Infof("loaded: %d items", n)

	switch command {
	case "apply", "a":
		operations, err := parseOperations(arguments)
		if nil != err {
			return err
		}
		if err := applyOperations(tree, operations); nil != err {
			return err
		}
		report(w, tree)
		log.Infof("save: %d items", tree.Count())
		return store.Save(tree, codec)

	default:
		return runOnTree(command, w, tree)
	}
}

func runOnTree(command string, w io.Writer, tree *avl.Tree) error {
	switch command {
	case "check", "c":
		if err := tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(w, "ok: %d items\n", tree.Count())
	default:
		report(w, tree)
	}
	return nil
}

// keep a tree in step with an operations file until the file is
// removed or the program is interrupted
func watchOperations(log *logger.L, w io.Writer, store *storage.Store, codec storage.Codec, fileName string) error {

	watcher, err := newFileWatcher(fileName, log)
	if nil != err {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); nil != err {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	tree := avl.New()
	if _, err := store.Load(tree, codec); nil != err {
		return err
	}

	// current content first
	if err := applyFile(log, w, store, codec, tree, watcher.filePath); nil != err {
		return err
	}

	for {
		select {
		case <-watcher.change:
			if err := applyFile(log, w, store, codec, tree, watcher.filePath); nil != err {
				log.Errorf("apply file: %s  error: %s", watcher.filePath, err)
			}
		case <-watcher.remove:
			log.Info("operations file removed")
			return nil
		case sig := <-signals:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}

// the whole file is applied again on each change
func applyFile(log *logger.L, w io.Writer, store *storage.Store, codec storage.Codec, tree *avl.Tree, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	operations, err := readOperations(f)
	if nil != err {
		return err
	}
	log.Debugf("apply: %d operations", len(operations))

	if err := applyOperations(tree, operations); nil != err {
		return err
	}
	report(w, tree)
	return store.Save(tree, codec)
}
