// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"encoding/json"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/assets"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/genesis"
	"github.com/celestium/celestiumd/transactionrecord"
)

// Apply - confirm a transaction into durable state
//
// the confirmed balance is debited, the handler's confirmed transition
// runs and the record is persisted; the pool entry, if any, is dropped
// while its tentative debit stands because the spend is now final
//
// a confirmed transaction that cannot pay is a corrupted chain, not a
// recoverable input error
func (rsvr *Reservoir) Apply(tx *transactionrecord.Transaction) error {

	if "" == tx.Id {
		tx.Id = tx.MakeId()
	}

	handler, err := rsvr.registry.Get(tx.Type)
	if nil != err {
		return err
	}

	rsvr.Lock()
	defer rsvr.Unlock()

	if nil != rsvr.pools.Transactions.Get(tx.Id) {
		return fault.ErrTransactionAlreadyConfirmed
	}

	sender := rsvr.accounts.GetByPublicKey(tx.SenderPublicKey)
	if nil == sender {
		return fault.ErrSenderNotFound
	}
	tx.SenderId = sender.Address

	total := tx.Amount + tx.Fee
	if sender.Balance < total && !genesis.IsGenesis(tx.BlockId) {
		fault.Panicf("apply: account %s has %d, transaction %s needs %d",
			sender.Address, sender.Balance, tx.Id, total)
	}

	_, inPool := rsvr.pool[tx.Id]

	_, err = rsvr.accounts.Merge(sender.Address, account.Patch{
		Balance: account.Int64(-total),
	})
	if nil != err {
		return err
	}

	// a transaction confirmed from elsewhere never held a tentative
	// debit here, so take it now to keep both balances in step
	if !inPool {
		rsvr.accounts.Merge(sender.Address, account.Patch{
			UnconfirmedBalance: account.Int64(-total),
		})
	}

	err = handler.Apply(tx, sender)
	if nil != err {
		return err
	}

	err = rsvr.persist(tx, handler)
	if nil != err {
		return err
	}

	delete(rsvr.pool, tx.Id)
	rsvr.quarantine.Delete(tx.Id)

	rsvr.log.Infof("confirmed %s: %s", tx.Type.TypeName(), tx.Id)
	return nil
}

// Undo - reverse a confirmed transaction exactly
//
// the confirmed debit is refunded and the durable rows removed; the
// transaction is not re-admitted to the pool, resubmission runs the
// whole pipeline again
func (rsvr *Reservoir) Undo(tx *transactionrecord.Transaction) error {

	handler, err := rsvr.registry.Get(tx.Type)
	if nil != err {
		return err
	}

	rsvr.Lock()
	defer rsvr.Unlock()

	if nil == rsvr.pools.Transactions.Get(tx.Id) {
		return fault.ErrTransactionNotFound
	}

	sender := rsvr.accounts.GetByPublicKey(tx.SenderPublicKey)
	if nil == sender {
		return fault.ErrSenderNotFound
	}

	err = handler.Undo(tx, sender)
	if nil != err {
		return err
	}

	_, err = rsvr.accounts.Merge(sender.Address, account.Patch{
		Balance:            account.Int64(tx.Amount + tx.Fee),
		UnconfirmedBalance: account.Int64(tx.Amount + tx.Fee),
	})
	if nil != err {
		return err
	}

	err = rsvr.pools.Transactions.Delete(tx.Id)
	if nil != err {
		return err
	}

	rsvr.log.Infof("unwound %s: %s", tx.Type.TypeName(), tx.Id)
	return nil
}

// UndoUnconfirmed - evict a pooled transaction and refund its
// tentative effects
func (rsvr *Reservoir) UndoUnconfirmed(id string) error {

	rsvr.Lock()
	defer rsvr.Unlock()

	return rsvr.remove(id)
}

// must hold the writer lock
func (rsvr *Reservoir) remove(id string) error {
	item, ok := rsvr.pool[id]
	if !ok {
		return fault.ErrTransactionNotFound
	}

	handler, err := rsvr.registry.Get(item.tx.Type)
	if nil != err {
		return err
	}

	err = rsvr.undoUnconfirmed(item.tx, handler)
	if nil != err {
		return err
	}

	delete(rsvr.pool, id)
	return nil
}

// write the ledger row and the asset projection
func (rsvr *Reservoir) persist(tx *transactionrecord.Transaction, handler assets.Handler) error {

	row, err := json.Marshal(tx)
	if nil != err {
		return err
	}

	err = rsvr.pools.Transactions.Put(tx.Id, row)
	if nil != err {
		return err
	}

	return handler.StoreAsset(tx)
}

// GetConfirmed - hydrate a confirmed transaction from durable state
func (rsvr *Reservoir) GetConfirmed(id string) (*transactionrecord.Transaction, error) {

	row := rsvr.pools.Transactions.Get(id)
	if nil == row {
		return nil, fault.ErrTransactionNotFound
	}

	tx := &transactionrecord.Transaction{}
	err := json.Unmarshal(row, tx)
	if nil != err {
		return nil, err
	}

	handler, err := rsvr.registry.Get(tx.Type)
	if nil != err {
		return nil, err
	}

	err = handler.ReadAsset(tx)
	if nil != err {
		return nil, err
	}
	return tx, nil
}
