// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

// Codec - convert tree keys and values to and from bytes
//
// for a snapshot to reload in ascending order the encoded keys must
// sort bytewise in the same order as the items
type Codec interface {
	EncodeKey(avl.Item) ([]byte, error)
	DecodeKey([]byte) (avl.Item, error)
	EncodeValue(interface{}) ([]byte, error)
	DecodeValue([]byte) (interface{}, error)
}

// StringCodec - avl.StringItem keys with string values
type StringCodec struct{}

// EncodeKey - bytes of the string key
func (StringCodec) EncodeKey(key avl.Item) ([]byte, error) {
	s, ok := key.(avl.StringItem)
	if !ok {
		return nil, fault.ErrInvalidItem
	}
	return []byte(s), nil
}

// DecodeKey - string key from bytes
func (StringCodec) DecodeKey(buffer []byte) (avl.Item, error) {
	return avl.StringItem(buffer), nil
}

// EncodeValue - bytes of the string value, anything else including
// nil is rejected since it could not be loaded back unchanged
func (StringCodec) EncodeValue(value interface{}) ([]byte, error) {
	v, ok := value.(string)
	if !ok {
		return nil, fault.ErrInvalidItem
	}
	return []byte(v), nil
}

// DecodeValue - string value from bytes
func (StringCodec) DecodeValue(buffer []byte) (interface{}, error) {
	return string(buffer), nil
}
