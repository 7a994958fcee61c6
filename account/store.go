// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/identity"
)

// Store - holds all in-memory account state
//
// every mutation runs under the store lock so concurrent callers
// observe whole merges, never partial field updates
type Store struct {
	sync.RWMutex
	log      *logger.L
	accounts map[string]*Account
}

// NewStore - create an empty account store
func NewStore() *Store {
	return &Store{
		log:      logger.New("account"),
		accounts: make(map[string]*Account),
	}
}

// Get - fetch a snapshot of an account by address
func (store *Store) Get(address string) *Account {
	store.RLock()
	defer store.RUnlock()

	account, ok := store.accounts[address]
	if !ok {
		return nil
	}
	return account.clone()
}

// GetByPublicKey - public key filters normalize to an address lookup
func (store *Store) GetByPublicKey(publicKey identity.PublicKey) *Account {
	return store.Get(identity.DeriveAddress(publicKey))
}

// GetByUsername - fetch the account holding a confirmed username
func (store *Store) GetByUsername(alias string) *Account {
	store.RLock()
	defer store.RUnlock()

	for _, account := range store.accounts {
		if alias == account.Username {
			return account.clone()
		}
	}
	return nil
}

// GetByUnconfirmedUsername - fetch the account holding a pending username
func (store *Store) GetByUnconfirmedUsername(alias string) *Account {
	store.RLock()
	defer store.RUnlock()

	for _, account := range store.accounts {
		if alias == account.UnconfirmedUsername {
			return account.clone()
		}
	}
	return nil
}

// GetOrCreate - fetch an account, constructing a zero-balance one on
// first reference
func (store *Store) GetOrCreate(address string) *Account {
	store.Lock()
	defer store.Unlock()

	return store.getOrCreate(address).clone()
}

// Set - overwrite the named scalar fields of an account
func (store *Store) Set(address string, patch Patch) error {
	if "" == address {
		return fault.ErrInvalidAddress
	}

	store.Lock()
	defer store.Unlock()

	account := store.getOrCreate(address)

	if nil != patch.PublicKey {
		account.PublicKey = append(identity.PublicKey(nil), patch.PublicKey...)
	}
	if nil != patch.Balance {
		account.Balance = *patch.Balance
	}
	if nil != patch.UnconfirmedBalance {
		account.UnconfirmedBalance = *patch.UnconfirmedBalance
	}
	if nil != patch.SecondSignature {
		account.SecondSignature = *patch.SecondSignature
	}
	if nil != patch.UnconfirmedSignature {
		account.UnconfirmedSignature = *patch.UnconfirmedSignature
	}
	if nil != patch.SecondPublicKey {
		account.SecondPublicKey = append(identity.PublicKey(nil), *patch.SecondPublicKey...)
	}
	if nil != patch.Username {
		account.Username = *patch.Username
	}
	if nil != patch.UnconfirmedUsername {
		account.UnconfirmedUsername = *patch.UnconfirmedUsername
	}
	return nil
}

// Merge - apply balance deltas and delegate diff lists atomically
//
// the returned patch is exactly what was applied, so the caller can
// persist it and later undo with its reversal
func (store *Store) Merge(address string, patch Patch) (Patch, error) {
	if "" == address {
		return Patch{}, fault.ErrInvalidAddress
	}

	store.Lock()
	defer store.Unlock()

	account := store.getOrCreate(address)

	if nil != patch.PublicKey && 0 == len(account.PublicKey) {
		account.PublicKey = append(identity.PublicKey(nil), patch.PublicKey...)
	}
	if nil != patch.Balance {
		account.Balance += *patch.Balance
	}
	if nil != patch.UnconfirmedBalance {
		account.UnconfirmedBalance += *patch.UnconfirmedBalance
	}
	if nil != patch.SecondSignature {
		account.SecondSignature = *patch.SecondSignature
	}
	if nil != patch.UnconfirmedSignature {
		account.UnconfirmedSignature = *patch.UnconfirmedSignature
	}
	if nil != patch.SecondPublicKey {
		account.SecondPublicKey = append(identity.PublicKey(nil), *patch.SecondPublicKey...)
	}
	if nil != patch.Username {
		account.Username = *patch.Username
	}
	if nil != patch.UnconfirmedUsername {
		account.UnconfirmedUsername = *patch.UnconfirmedUsername
	}
	if 0 != len(patch.Delegates) {
		account.Delegates = diff.Apply(account.Delegates, patch.Delegates)
	}
	if 0 != len(patch.UnconfirmedDelegates) {
		account.UnconfirmedDelegates = diff.Apply(account.UnconfirmedDelegates, patch.UnconfirmedDelegates)
	}

	return patch, nil
}

// must hold the store lock
func (store *Store) getOrCreate(address string) *Account {
	account, ok := store.accounts[address]
	if !ok {
		account = &Account{Address: address}
		store.accounts[address] = account
		store.log.Debugf("created account: %s", address)
	}
	return account
}
