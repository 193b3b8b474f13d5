// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avlbst/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 0x100
	recordPrefix   = 'K'
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - a snapshot database
type Store struct {
	log    *logger.L
	db     *leveldb.DB
	access DataAccess
}

// Open - open or create the snapshot database
//
// a new read-write database is tagged with the current version, an
// existing database must already be at the current version
func Open(name string, readOnly bool) (*Store, error) {
	log := logger.New("storage")

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch version {
	case 0:
		if readOnly {
			break
		}
		log.Infof("initialise database: %s", name)
		if err := putVersion(db, currentVersion); nil != err {
			db.Close()
			return nil, err
		}
	case currentVersion:
	default:
		log.Criticalf("database version: %d  current version: %d", version, currentVersion)
		db.Close()
		return nil, fault.ErrSnapshotVersion
	}

	log.Debugf("opened database: %s  read only: %t", name, readOnly)

	return &Store{
		log:    log,
		db:     db,
		access: newDA(db),
	}, nil
}

// New - a store over an existing data access, the caller handles
// opening and closing the underlying database
func New(access DataAccess) *Store {
	return &Store{
		log:    logger.New("storage"),
		db:     nil,
		access: access,
	}
}

// Close - close the database connection, the store cannot be used
// afterwards
func (s *Store) Close() error {
	s.access = nil
	if nil == s.db {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Debug("closed")
	return err
}

// returns zero if the database has no version
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(version))

	return db.Put(versionKey, buffer, nil)
}
