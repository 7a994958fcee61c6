// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"strings"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/constants"
	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/storage"
	"github.com/celestium/celestiumd/transactionrecord"
)

// delegate vote, type 2
//
// self-referential: the recipient is the sender; the payload is an
// ordered diff list over the sender's delegate-vote collection
type voteHandler struct {
	store     *account.Store
	delegates DelegateRegistry
	pools     *storage.Store
}

func (h *voteHandler) Create(tx *transactionrecord.Transaction, data CreateData) error {
	if nil == data.Sender {
		return fault.ErrSenderNotFound
	}
	tx.RecipientId = data.Sender.Address
	tx.Amount = 0
	tx.Asset.Votes = data.Votes
	return nil
}

func (h *voteHandler) CalculateFee(tx *transactionrecord.Transaction) int64 {
	return 1 * constants.FixedPoint
}

func (h *voteHandler) Verify(tx *transactionrecord.Transaction, sender *account.Account) error {
	if tx.RecipientId != tx.SenderId {
		return fault.ErrInvalidRecipient
	}
	if 0 == len(tx.Asset.Votes) {
		return fault.ErrEmptyVotes
	}
	if len(tx.Asset.Votes) > constants.MaximumVotes {
		return fault.ErrVotesLimit
	}
	return nil
}

func (h *voteHandler) Process(tx *transactionrecord.Transaction, sender *account.Account) error {
	return h.delegates.CheckDelegates(tx.SenderPublicKey, tx.Asset.Votes)
}

func (h *voteHandler) Bytes(tx *transactionrecord.Transaction) []byte {
	return tx.AssetBytes()
}

func (h *voteHandler) Apply(tx *transactionrecord.Transaction, sender *account.Account) error {
	_, err := h.store.Merge(sender.Address, account.Patch{
		Delegates: tx.Asset.Votes,
	})
	return err
}

func (h *voteHandler) Undo(tx *transactionrecord.Transaction, sender *account.Account) error {
	_, err := h.store.Merge(sender.Address, account.Patch{
		Delegates: diff.Reverse(tx.Asset.Votes),
	})
	return err
}

func (h *voteHandler) ApplyUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	err := h.delegates.CheckUnconfirmedDelegates(tx.SenderPublicKey, tx.Asset.Votes)
	if nil != err {
		return err
	}
	_, err = h.store.Merge(sender.Address, account.Patch{
		UnconfirmedDelegates: tx.Asset.Votes,
	})
	return err
}

func (h *voteHandler) UndoUnconfirmed(tx *transactionrecord.Transaction, sender *account.Account) error {
	_, err := h.store.Merge(sender.Address, account.Patch{
		UnconfirmedDelegates: diff.Reverse(tx.Asset.Votes),
	})
	return err
}

func (h *voteHandler) Normalize(tx *transactionrecord.Transaction) error {
	if nil != tx.Asset.Username || nil != tx.Asset.Signature {
		return fault.ErrInvalidAssetPayload
	}
	for _, vote := range tx.Asset.Votes {
		if diff.Add != vote.Sign && diff.Remove != vote.Sign {
			return fault.ErrInvalidDiffEntry
		}
		if "" == vote.Value {
			return fault.ErrInvalidDiffEntry
		}
	}
	return nil
}

func (h *voteHandler) StoreAsset(tx *transactionrecord.Transaction) error {
	s := make([]string, len(tx.Asset.Votes))
	for i, vote := range tx.Asset.Votes {
		s[i] = vote.String()
	}
	return h.pools.Votes.Put(tx.Id, []byte(strings.Join(s, ",")))
}

func (h *voteHandler) ReadAsset(tx *transactionrecord.Transaction) error {
	row := h.pools.Votes.Get(tx.Id)
	if nil == row {
		return fault.ErrTransactionNotFound
	}

	parts := strings.Split(string(row), ",")
	votes := make([]diff.Entry, len(parts))
	for i, part := range parts {
		err := votes[i].UnmarshalText([]byte(part))
		if nil != err {
			return err
		}
	}
	tx.Asset.Votes = votes
	return nil
}

func (h *voteHandler) IsReady(tx *transactionrecord.Transaction, sender *account.Account) bool {
	return isReady(tx, sender)
}
