// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// persistence collaborator
//
// key/value pools over a single LevelDB database, one single-byte
// prefix per pool
package storage

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
)

// Store - the set of persistence pools
type Store struct {
	db *leveldb.DB

	Transactions *PoolHandle // confirmed transaction ledger
	Votes        *PoolHandle // vote asset rows
	Usernames    *PoolHandle // username asset rows
	Signatures   *PoolHandle // second-signature asset rows
}

// New - open the database under a data directory
func New(directory string) (*Store, error) {
	db, err := leveldb.OpenFile(filepath.Join(directory, "celestium-index.leveldb"), nil)
	if nil != err {
		return nil, errors.Wrap(err, "cannot open index database")
	}
	return wrap(db), nil
}

// NewEphemeral - a memory-backed store for tests
func NewEphemeral() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, errors.Wrap(err, "cannot open ephemeral database")
	}
	return wrap(db), nil
}

func wrap(db *leveldb.DB) *Store {
	return &Store{
		db:           db,
		Transactions: &PoolHandle{prefix: 'T', db: db},
		Votes:        &PoolHandle{prefix: 'V', db: db},
		Usernames:    &PoolHandle{prefix: 'U', db: db},
		Signatures:   &PoolHandle{prefix: 'S', db: db},
	}
}

// Close - release the underlying database
func (store *Store) Close() error {
	return store.db.Close()
}
