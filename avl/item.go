// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// StringItem - a string key
type StringItem string

// Compare - lexical ordering of string keys
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}

// String - the key as a string
func (s StringItem) String() string {
	return string(s)
}

// IntItem - an integer key
type IntItem int

// Compare - numeric ordering of integer keys
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}
