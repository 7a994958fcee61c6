// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"regexp"
	"strings"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/constants"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/storage"
	"github.com/celestium/celestiumd/transactionrecord"
)

var (
	usernameCharset = regexp.MustCompile(`^[a-z0-9!@$&_.]+$`)
	addressShape    = regexp.MustCompile(`^[0-9]+c$`)
)

// username registration, type 3
//
// aliases are globally unique across both confirmed and pending
// registrations, compared case-insensitively
type usernameHandler struct {
	store *account.Store
	pools *storage.Store
}

func (h *usernameHandler) Create(tx *transactionrecord.Transaction, data CreateData) error {
	if nil == data.Sender {
		return fault.ErrSenderNotFound
	}
	if "" == data.Username {
		return fault.ErrInvalidUsername
	}
	tx.RecipientId = ""
	tx.Amount = 0
	tx.Asset.Username = &transactionrecord.UsernameClaim{
		Alias:     data.Username,
		PublicKey: data.Sender.PublicKey,
	}
	return nil
}

func (h *usernameHandler) CalculateFee(tx *transactionrecord.Transaction) int64 {
	return 1 * constants.FixedPoint
}

func (h *usernameHandler) Verify(tx *transactionrecord.Transaction, sender *account.Account) error {
	if "" != tx.RecipientId {
		return fault.ErrInvalidRecipient
	}
	if 0 != tx.Amount {
		return fault.ErrInvalidAmount
	}
	if nil == tx.Asset.Username {
		return fault.ErrInvalidAssetPayload
	}

	alias := strings.ToLower(tx.Asset.Username.Alias)
	if !usernameCharset.MatchString(alias) {
		return fault.ErrInvalidUsername
	}
	if addressShape.MatchString(alias) {
		return fault.ErrUsernameLikeAddress
	}
	n := len(tx.Asset.Username.Alias)
	if n < constants.MinimumUsernameLength || n > constants.MaximumUsernameLength {
		return fault.ErrUsernameLengthLimit
	}
	return nil
}

func (h *usernameHandler) Process(tx *transactionrecord.Transaction, sender *account.Account) error {
	alias := tx.Asset.Username.Alias
	if existing := h.store.GetByUsername(alias); nil != existing && existing.Address != sender.Address {
		return fault.ErrUsernameAlreadyExists
	}
	if "" != sender.Username {
		return fault.ErrUsernameAlreadyExists
	}
	return nil
}

func (h *usernameHandler) Bytes(tx *transactionrecord.Transaction) []byte {
	return tx.AssetBytes()
}

func (h *usernameHandler) Apply(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.store.Set(sender.Address, account.Patch{
		Username:            account.String(tx.Asset.Username.Alias),
		UnconfirmedUsername: account.String(""),
	})
}

func (h *usernameHandler) Undo(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.store.Set(sender.Address, account.Patch{
		Username:            account.String(""),
		UnconfirmedUsername: account.String(tx.Asset.Username.Alias),
	})
}

func (h *usernameHandler) ApplyUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	alias := tx.Asset.Username.Alias
	if existing := h.store.GetByUnconfirmedUsername(alias); nil != existing && existing.Address != sender.Address {
		return fault.ErrUsernameAlreadyExists
	}
	current := h.store.Get(sender.Address)
	if nil == current {
		return fault.ErrSenderNotFound
	}
	if "" != current.UnconfirmedUsername {
		return fault.ErrUsernameAlreadyExists
	}
	return h.store.Set(sender.Address, account.Patch{
		UnconfirmedUsername: account.String(alias),
	})
}

func (h *usernameHandler) UndoUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.store.Set(sender.Address, account.Patch{
		UnconfirmedUsername: account.String(""),
	})
}

func (h *usernameHandler) Normalize(tx *transactionrecord.Transaction) error {
	if nil == tx.Asset.Username {
		return fault.ErrInvalidAssetPayload
	}
	if 0 != len(tx.Asset.Votes) || nil != tx.Asset.Signature {
		return fault.ErrInvalidAssetPayload
	}
	return nil
}

func (h *usernameHandler) StoreAsset(tx *transactionrecord.Transaction) error {
	return h.pools.Usernames.Put(tx.Id, []byte(tx.Asset.Username.Alias))
}

func (h *usernameHandler) ReadAsset(tx *transactionrecord.Transaction) error {
	row := h.pools.Usernames.Get(tx.Id)
	if nil == row {
		return fault.ErrTransactionNotFound
	}
	tx.Asset.Username = &transactionrecord.UsernameClaim{
		Alias:     string(row),
		PublicKey: tx.SenderPublicKey,
	}
	return nil
}

func (h *usernameHandler) IsReady(tx *transactionrecord.Transaction, sender *account.Account) bool {
	return isReady(tx, sender)
}
