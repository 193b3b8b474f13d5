// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

//go:generate mockgen -source=data_access.go -destination=mocks/data_access.go -package=mocks

// DataAccess - batched access to the database
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Write() error
	Get([]byte) ([]byte, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type dataAccessImpl struct {
	db          *leveldb.DB
	transaction *leveldb.Batch
}

func newDA(db *leveldb.DB) DataAccess {
	return &dataAccessImpl{
		db:          db,
		transaction: new(leveldb.Batch),
	}
}

func (d *dataAccessImpl) Begin() {
	d.transaction.Reset()
}

func (d *dataAccessImpl) Put(key []byte, value []byte) {
	d.transaction.Put(key, value)
}

func (d *dataAccessImpl) Delete(key []byte) {
	d.transaction.Delete(key)
}

func (d *dataAccessImpl) Write() error {
	err := d.db.Write(d.transaction, nil)
	d.Begin()
	return err
}

func (d *dataAccessImpl) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccessImpl) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
