// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

// key range of all tree records
var recordRange = ldb_util.Range{
	Start: []byte{recordPrefix},     // Start of key range, included in the range
	Limit: []byte{recordPrefix + 1}, // Limit of key range, excluded from the range
}

func recordKey(key []byte) []byte {
	return append([]byte{recordPrefix}, key...)
}

// Save - replace the stored snapshot by the contents of the tree
func (s *Store) Save(tree *avl.Tree, codec Codec) error {
	if nil == s.access {
		return fault.ErrNotInitialised
	}
	if nil == tree {
		return fault.ErrNilTree
	}
	if nil == codec {
		return fault.ErrInvalidCodec
	}

	s.access.Begin()

	if err := s.deleteRecords(); nil != err {
		s.access.Begin()
		return err
	}

	err := error(nil)
	tree.Walk(func(p *avl.Node) bool {
		k, e := codec.EncodeKey(p.Key())
		if nil != e {
			err = e
			return false
		}
		v, e := codec.EncodeValue(p.Value())
		if nil != e {
			err = e
			return false
		}
		s.access.Put(recordKey(k), v)
		return true
	})
	if nil != err {
		s.log.Errorf("save: encode error: %s", err)
		s.access.Begin() // discard the partial batch
		return err
	}

	if err := s.access.Write(); nil != err {
		s.log.Errorf("save: write error: %s", err)
		return err
	}
	s.log.Infof("saved: %d records", tree.Count())
	return nil
}

// Load - insert every stored record into the tree, returns the number
// of records read
func (s *Store) Load(tree *avl.Tree, codec Codec) (int, error) {
	if nil == s.access {
		return 0, fault.ErrNotInitialised
	}
	if nil == tree {
		return 0, fault.ErrNilTree
	}
	if nil == codec {
		return 0, fault.ErrInvalidCodec
	}

	iter := s.access.Iterator(&recordRange)
	defer iter.Release()

	n := 0
	for iter.Next() {
		key, err := codec.DecodeKey(iter.Key()[1:])
		if nil != err {
			s.log.Errorf("load: key: %x  decode error: %s", iter.Key(), err)
			return n, err
		}
		value, err := codec.DecodeValue(iter.Value())
		if nil != err {
			s.log.Errorf("load: key: %x  decode error: %s", iter.Key(), err)
			return n, err
		}
		tree.Insert(key, value)
		n += 1
	}
	if err := iter.Error(); nil != err {
		return n, err
	}

	s.log.Debugf("loaded: %d records", n)
	return n, nil
}

// Count - number of records in the snapshot
func (s *Store) Count() (int, error) {
	if nil == s.access {
		return 0, fault.ErrNotInitialised
	}
	iter := s.access.Iterator(&recordRange)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n += 1
	}
	return n, iter.Error()
}

// Clear - delete the stored snapshot
func (s *Store) Clear() error {
	if nil == s.access {
		return fault.ErrNotInitialised
	}
	s.access.Begin()
	if err := s.deleteRecords(); nil != err {
		s.access.Begin()
		return err
	}
	return s.access.Write()
}

// add deletion of all existing records to the current batch
func (s *Store) deleteRecords() error {
	iter := s.access.Iterator(&recordRange)
	defer iter.Release()

	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		s.access.Delete(key)
	}
	return iter.Error()
}
