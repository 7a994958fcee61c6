// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/assets"
	"github.com/celestium/celestiumd/constants"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/genesis"
	"github.com/celestium/celestiumd/identity"
	"github.com/celestium/celestiumd/transactionrecord"
)

// ProcessUnconfirmed - run a candidate through the admission pipeline
//
// on success the transaction sits in the pool with tentative balance
// effects applied and an announcement queued; a candidate that fails
// the economic checks is quarantined so the same id cannot be retried
func (rsvr *Reservoir) ProcessUnconfirmed(tx *transactionrecord.Transaction, broadcast bool) error {

	// the id is derived, never trusted
	computed := tx.MakeId()
	if "" != tx.Id && computed != tx.Id {
		return fault.ErrInvalidTransactionId
	}
	tx.Id = computed

	handler, err := rsvr.registry.Get(tx.Type)
	if nil != err {
		return err
	}

	sender := rsvr.accounts.GetByPublicKey(tx.SenderPublicKey)
	if nil == sender {
		return fault.ErrSenderNotFound
	}
	if "" != tx.SenderId && sender.Address != tx.SenderId {
		return fault.ErrInvalidAddress
	}
	tx.SenderId = sender.Address

	err = rsvr.verify(tx, sender)
	if nil != err {
		return err
	}

	// the type-aware fee, floored so nothing rides for free
	fee := handler.CalculateFee(tx)
	if fee < constants.MinimumFee {
		fee = constants.MinimumFee
	}
	tx.Fee = fee

	err = handler.Normalize(tx)
	if nil != err {
		return err
	}
	err = handler.Verify(tx, sender)
	if nil != err {
		return err
	}

	// cross-account semantic checks before taking the writer lock
	err = handler.Process(tx, sender)
	if nil != err {
		return err
	}

	rsvr.Lock()
	defer rsvr.Unlock()

	if nil != rsvr.pools.Transactions.Get(tx.Id) {
		return fault.ErrTransactionAlreadyConfirmed
	}
	if _, ok := rsvr.pool[tx.Id]; ok {
		return fault.ErrTransactionAlreadyExists
	}
	if _, ok := rsvr.quarantine.Get(tx.Id); ok {
		return fault.ErrTransactionAlreadyExists
	}

	err = rsvr.applyUnconfirmed(tx, handler)
	if nil != err {
		rsvr.quarantine.SetDefault(tx.Id, tx)
		rsvr.log.Warnf("quarantined: %s: %s", tx.Id, err)
		return err
	}

	rsvr.pool[tx.Id] = &unconfirmedItem{
		tx:      tx,
		expires: rsvr.clock.Now() + uint32(constants.ReservoirTimeout.Seconds()),
	}
	rsvr.log.Infof("admitted %s: %s", tx.Type.TypeName(), tx.Id)

	rsvr.bus.Send(tx, broadcast)
	return nil
}

// signature, amount and timestamp checks
func (rsvr *Reservoir) verify(tx *transactionrecord.Transaction, sender *account.Account) error {

	if !identity.Verify(tx.SigningDigest(), tx.Signature, tx.SenderPublicKey) {
		return fault.ErrInvalidSignature
	}

	if sender.SecondSignature {
		if !identity.Verify(tx.SecondSigningDigest(), tx.SignSignature, sender.SecondPublicKey) {
			return fault.ErrInvalidSecondSignature
		}
	}

	if tx.Amount < 0 {
		return fault.ErrInvalidAmount
	}

	if tx.Timestamp > rsvr.clock.Now()+constants.TimestampSkewLimit {
		return fault.ErrInvalidTimestamp
	}

	return nil
}

// tentative balance effects: debit the sender's unconfirmed balance
// and run the handler's unconfirmed transition, refunding the debit if
// the handler refuses
//
// must hold the writer lock
func (rsvr *Reservoir) applyUnconfirmed(tx *transactionrecord.Transaction, handler assets.Handler) error {

	total := tx.Amount + tx.Fee

	sender := rsvr.accounts.Get(tx.SenderId)
	if nil == sender {
		return fault.ErrSenderNotFound
	}
	if sender.UnconfirmedBalance < total && !genesis.IsGenesis(tx.BlockId) {
		return fault.ErrInsufficientFunds
	}

	_, err := rsvr.accounts.Merge(tx.SenderId, account.Patch{
		UnconfirmedBalance: account.Int64(-total),
	})
	if nil != err {
		return err
	}

	err = handler.ApplyUnconfirmed(tx, sender)
	if nil != err {
		rsvr.accounts.Merge(tx.SenderId, account.Patch{
			UnconfirmedBalance: account.Int64(total),
		})
		return err
	}
	return nil
}

// reverse of applyUnconfirmed
//
// must hold the writer lock
func (rsvr *Reservoir) undoUnconfirmed(tx *transactionrecord.Transaction, handler assets.Handler) error {

	sender := rsvr.accounts.Get(tx.SenderId)
	if nil == sender {
		return fault.ErrSenderNotFound
	}

	err := handler.UndoUnconfirmed(tx, sender)
	if nil != err {
		return err
	}

	_, err = rsvr.accounts.Merge(tx.SenderId, account.Patch{
		UnconfirmedBalance: account.Int64(tx.Amount + tx.Fee),
	})
	return err
}
