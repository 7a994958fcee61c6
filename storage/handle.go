// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// PoolHandle - access to one prefixed pool
type PoolHandle struct {
	prefix byte
	db     *leveldb.DB
}

// prepend the pool tag to a key
func (p *PoolHandle) prefixKey(key string) []byte {
	prefixedKey := make([]byte, 1, 1+len(key))
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a value
func (p *PoolHandle) Put(key string, value []byte) error {
	return p.db.Put(p.prefixKey(key), value, nil)
}

// Get - fetch a value, nil if the key is absent
func (p *PoolHandle) Get(key string) []byte {
	value, err := p.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	if nil != err {
		return nil
	}
	return value
}

// Has - check whether a key exists
func (p *PoolHandle) Has(key string) bool {
	ok, _ := p.db.Has(p.prefixKey(key), nil)
	return ok
}

// Delete - remove a key
func (p *PoolHandle) Delete(key string) error {
	return p.db.Delete(p.prefixKey(key), nil)
}
