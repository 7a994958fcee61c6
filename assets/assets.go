// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// asset-type handlers
//
// one registered implementation per transaction type covering its
// full lifecycle from creation through persistence; the registry is
// populated once at startup and immutable thereafter
package assets

import (
	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/identity"
	"github.com/celestium/celestiumd/storage"
	"github.com/celestium/celestiumd/transactionrecord"
)

// Handler - the fixed capability set every transaction type implements
type Handler interface {

	// build the type-specific fields of a fresh transaction
	Create(tx *transactionrecord.Transaction, data CreateData) error

	// the type-aware fee for a transaction
	CalculateFee(tx *transactionrecord.Transaction) int64

	// structural checks local to the transaction and its sender
	Verify(tx *transactionrecord.Transaction, sender *account.Account) error

	// cross-account semantic checks, safe to run concurrently with
	// checks for other transactions
	Process(tx *transactionrecord.Transaction, sender *account.Account) error

	// canonical bytes of the asset payload
	Bytes(tx *transactionrecord.Transaction) []byte

	// confirmed state transition and its exact inverse
	Apply(tx *transactionrecord.Transaction, sender *account.Account) error
	Undo(tx *transactionrecord.Transaction, sender *account.Account) error

	// unconfirmed state transition and its exact inverse
	ApplyUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error
	UndoUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error

	// validate the shape of an inbound asset payload
	Normalize(tx *transactionrecord.Transaction) error

	// persistence projection and hydration of the asset payload
	StoreAsset(tx *transactionrecord.Transaction) error
	ReadAsset(tx *transactionrecord.Transaction) error

	// multisignature readiness for confirmation
	IsReady(tx *transactionrecord.Transaction, sender *account.Account) bool
}

// CreateData - inputs for building a transaction of any type
type CreateData struct {
	Sender          *account.Account
	RecipientId     string
	Amount          int64
	Votes           []diff.Entry
	Username        string
	SecondPublicKey identity.PublicKey
}

// DelegateRegistry - the delegate registry collaborator contract
type DelegateRegistry interface {
	CheckDelegates(publicKey identity.PublicKey, votes []diff.Entry) error
	CheckUnconfirmedDelegates(publicKey identity.PublicKey, votes []diff.Entry) error
}

// Registry - maps a transaction type code to its single handler
type Registry struct {
	handlers map[transactionrecord.Type]Handler
}

// NewRegistry - build the immutable handler table
func NewRegistry(store *account.Store, delegateRegistry DelegateRegistry, pools *storage.Store) *Registry {
	return &Registry{
		handlers: map[transactionrecord.Type]Handler{
			transactionrecord.TransferType:        &transferHandler{store: store},
			transactionrecord.SecondSignatureType: &secondSignatureHandler{store: store, pools: pools},
			transactionrecord.VoteType:            &voteHandler{store: store, delegates: delegateRegistry, pools: pools},
			transactionrecord.UsernameType:        &usernameHandler{store: store, pools: pools},
		},
	}
}

// Get - look up the handler for a type code
func (registry *Registry) Get(t transactionrecord.Type) (Handler, error) {
	handler, ok := registry.handlers[t]
	if !ok {
		return nil, fault.ErrUnknownTransactionType
	}
	return handler, nil
}

// shared readiness rule: accounts under multisignature control need
// enough collected co-signatures, everyone else is always ready
func isReady(tx *transactionrecord.Transaction, sender *account.Account) bool {
	if 0 == len(sender.MultiSignatures) {
		return true
	}
	return len(tx.Signatures) >= sender.MultiMin
}
