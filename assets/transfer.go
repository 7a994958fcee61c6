// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"strings"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/constants"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/transactionrecord"
)

// plain transfer, type 0
//
// no asset payload; the sender debit is the pipeline's generic step,
// only the recipient credit lives here
type transferHandler struct {
	store *account.Store
}

func (h *transferHandler) Create(tx *transactionrecord.Transaction, data CreateData) error {
	if "" == data.RecipientId {
		return fault.ErrInvalidRecipient
	}
	tx.RecipientId = data.RecipientId
	tx.Amount = data.Amount
	return nil
}

func (h *transferHandler) CalculateFee(tx *transactionrecord.Transaction) int64 {
	return tx.Amount / 1000
}

func (h *transferHandler) Verify(tx *transactionrecord.Transaction, sender *account.Account) error {
	if !strings.HasSuffix(tx.RecipientId, constants.AddressSuffix) {
		return fault.ErrInvalidRecipient
	}
	if len(tx.RecipientId) < 2 {
		return fault.ErrInvalidRecipient
	}
	return nil
}

func (h *transferHandler) Process(tx *transactionrecord.Transaction, sender *account.Account) error {
	return nil
}

func (h *transferHandler) Bytes(tx *transactionrecord.Transaction) []byte {
	return nil
}

func (h *transferHandler) Apply(tx *transactionrecord.Transaction, sender *account.Account) error {
	h.store.GetOrCreate(tx.RecipientId)
	_, err := h.store.Merge(tx.RecipientId, account.Patch{
		Balance:            account.Int64(tx.Amount),
		UnconfirmedBalance: account.Int64(tx.Amount),
	})
	return err
}

func (h *transferHandler) Undo(tx *transactionrecord.Transaction, sender *account.Account) error {
	_, err := h.store.Merge(tx.RecipientId, account.Patch{
		Balance:            account.Int64(-tx.Amount),
		UnconfirmedBalance: account.Int64(-tx.Amount),
	})
	return err
}

func (h *transferHandler) ApplyUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	return nil
}

func (h *transferHandler) UndoUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	return nil
}

func (h *transferHandler) Normalize(tx *transactionrecord.Transaction) error {
	if 0 != len(tx.Asset.Votes) || nil != tx.Asset.Username || nil != tx.Asset.Signature {
		return fault.ErrInvalidAssetPayload
	}
	return nil
}

func (h *transferHandler) StoreAsset(tx *transactionrecord.Transaction) error {
	return nil
}

func (h *transferHandler) ReadAsset(tx *transactionrecord.Transaction) error {
	return nil
}

func (h *transferHandler) IsReady(tx *transactionrecord.Transaction, sender *account.Account) bool {
	return isReady(tx, sender)
}
