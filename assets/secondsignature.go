// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/crypto/ed25519"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/constants"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/identity"
	"github.com/celestium/celestiumd/storage"
	"github.com/celestium/celestiumd/transactionrecord"
)

// second-signature registration, type 1
//
// at most one registration per account, pending or confirmed
type secondSignatureHandler struct {
	store *account.Store
	pools *storage.Store
}

func (h *secondSignatureHandler) Create(tx *transactionrecord.Transaction, data CreateData) error {
	if ed25519.PublicKeySize != len(data.SecondPublicKey) {
		return fault.ErrInvalidPublicKey
	}
	tx.RecipientId = ""
	tx.Amount = 0
	tx.Asset.Signature = &transactionrecord.SignatureKey{
		PublicKey: data.SecondPublicKey,
	}
	return nil
}

func (h *secondSignatureHandler) CalculateFee(tx *transactionrecord.Transaction) int64 {
	return 5 * constants.FixedPoint
}

func (h *secondSignatureHandler) Verify(tx *transactionrecord.Transaction, sender *account.Account) error {
	if nil == tx.Asset.Signature {
		return fault.ErrInvalidAssetPayload
	}
	if ed25519.PublicKeySize != len(tx.Asset.Signature.PublicKey) {
		return fault.ErrInvalidPublicKey
	}
	return nil
}

func (h *secondSignatureHandler) Process(tx *transactionrecord.Transaction, sender *account.Account) error {
	return nil
}

func (h *secondSignatureHandler) Bytes(tx *transactionrecord.Transaction) []byte {
	return tx.AssetBytes()
}

func (h *secondSignatureHandler) Apply(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.store.Set(sender.Address, account.Patch{
		SecondSignature:      account.Bool(true),
		UnconfirmedSignature: account.Bool(false),
		SecondPublicKey:      account.Key(tx.Asset.Signature.PublicKey),
	})
}

func (h *secondSignatureHandler) Undo(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.store.Set(sender.Address, account.Patch{
		SecondSignature:      account.Bool(false),
		UnconfirmedSignature: account.Bool(true),
		SecondPublicKey:      account.Key(nil),
	})
}

func (h *secondSignatureHandler) ApplyUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	current := h.store.Get(sender.Address)
	if nil == current {
		return fault.ErrSenderNotFound
	}
	if current.SecondSignature || current.UnconfirmedSignature {
		return fault.ErrSecondSignatureAlreadyEnrolled
	}
	return h.store.Set(sender.Address, account.Patch{
		UnconfirmedSignature: account.Bool(true),
	})
}

func (h *secondSignatureHandler) UndoUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.store.Set(sender.Address, account.Patch{
		UnconfirmedSignature: account.Bool(false),
	})
}

func (h *secondSignatureHandler) Normalize(tx *transactionrecord.Transaction) error {
	if nil == tx.Asset.Signature {
		return fault.ErrInvalidAssetPayload
	}
	if 0 != len(tx.Asset.Votes) || nil != tx.Asset.Username {
		return fault.ErrInvalidAssetPayload
	}
	return nil
}

func (h *secondSignatureHandler) StoreAsset(tx *transactionrecord.Transaction) error {
	return h.pools.Signatures.Put(tx.Id, tx.Asset.Signature.PublicKey)
}

func (h *secondSignatureHandler) ReadAsset(tx *transactionrecord.Transaction) error {
	row := h.pools.Signatures.Get(tx.Id)
	if nil == row {
		return fault.ErrTransactionNotFound
	}
	tx.Asset.Signature = &transactionrecord.SignatureKey{
		PublicKey: identity.PublicKey(row),
	}
	return nil
}

func (h *secondSignatureHandler) IsReady(tx *transactionrecord.Transaction, sender *account.Account) bool {
	return isReady(tx, sender)
}
