// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk snapshot of a tree
//
// A LevelDB database holds the key/value pairs of a tree.  Keys and
// values are converted to bytes by a Codec.
//
// Notes:
// 1. ++ = concatenation of byte data
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32 (4 bytes)
//
//   K ++ encoded key           - one record per tree node
//                                data: encoded value
//
// A snapshot is written in a single batch, the previous records are
// deleted in the same batch.
package storage
