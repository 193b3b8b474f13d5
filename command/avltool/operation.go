// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/paths"
)

// a single tree update
//
//   +key=value  insert or overwrite
//   +key        insert with the key as its value
//   -key        remove
type operation struct {
	remove bool
	key    string
	value  string
}

func (op operation) String() string {
	if op.remove {
		return "-" + op.key
	}
	return "+" + op.key + "=" + op.value
}

func parseOperation(s string) (operation, error) {
	if len(s) < 2 {
		return operation{}, fault.ErrInvalidOperation
	}

	switch s[0] {
	case '+':
		kv := strings.SplitN(s[1:], "=", 2)
		if "" == kv[0] {
			return operation{}, fault.ErrInvalidOperation
		}
		if 1 == len(kv) {
			return operation{key: kv[0], value: kv[0]}, nil
		}
		return operation{key: kv[0], value: kv[1]}, nil

	case '-':
		return operation{remove: true, key: s[1:]}, nil

	default:
		return operation{}, fault.ErrInvalidOperation
	}
}

func parseOperations(arguments []string) ([]operation, error) {
	operations := make([]operation, 0, len(arguments))
	for i, s := range arguments {
		op, err := parseOperation(s)
		if nil != err {
			return nil, fmt.Errorf("argument[%d]: %q  error: %s", i, s, err)
		}
		operations = append(operations, op)
	}
	return operations, nil
}

// read operations from a text stream, whitespace separated with '#'
// starting a comment that runs to the end of the line
func readOperations(r io.Reader) ([]operation, error) {
	operations := []operation{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, s := range strings.Fields(line) {
			op, err := parseOperation(s)
			if nil != err {
				return nil, fmt.Errorf("line: %d  operation: %q  error: %s", n, s, err)
			}
			operations = append(operations, op)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

// apply the operations in order, the tree is verified after each one
// and processing stops at the first inconsistency
func applyOperations(tree *avl.Tree, operations []operation) error {
	for i, op := range operations {
		if op.remove {
			tree.Remove(avl.StringItem(op.key))
		} else {
			tree.Insert(avl.StringItem(op.key), op.value)
		}
		if err := tree.Check(); nil != err {
			return fmt.Errorf("operation[%d]: %s  error: %s", i, op, err)
		}
	}
	return nil
}

// draw the tree followed by a one line summary
func report(w io.Writer, tree *avl.Tree) {
	depth := tree.Fprint(w, true)
	fmt.Fprintf(w, "count: %d  depth: %d  equal paths: %t\n", tree.Count(), depth, paths.EqualPaths(tree.Shape()))
}
