// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/identity"
	"github.com/celestium/celestiumd/transactionrecord"
)

func makeTransfer() *transactionrecord.Transaction {
	pub, _ := identity.DeriveKeypair("sender secret")
	return &transactionrecord.Transaction{
		Type:            transactionrecord.TransferType,
		Timestamp:       1000,
		SenderPublicKey: pub,
		RecipientId:     "18446744073709551615C",
		Amount:          50,
	}
}

func TestPackLayout(t *testing.T) {
	tx := makeTransfer()

	packed := tx.Pack()

	// type ‖ timestamp ‖ public key ‖ recipient ‖ amount
	assert.Len(t, []byte(packed), 1+4+32+8+8)
	assert.Equal(t, byte(transactionrecord.TransferType), packed[0])

	// timestamp little-endian
	assert.Equal(t, []byte{0xe8, 0x03, 0x00, 0x00}, []byte(packed[1:5]))

	// recipient big-endian, suffix stripped
	assert.Equal(t,
		[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		[]byte(packed[37:45]))

	// amount little-endian
	assert.Equal(t, byte(50), packed[45])
}

func TestPackZeroFillsAbsentRecipient(t *testing.T) {
	tx := makeTransfer()
	tx.RecipientId = ""

	packed := tx.Pack()
	assert.Equal(t, make([]byte, 8), []byte(packed[37:45]))
}

func TestMakeIdIsDeterministic(t *testing.T) {
	tx := makeTransfer()

	id := tx.MakeId()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, tx.MakeId())

	// any field change gives a different id
	tx.Amount += 1
	assert.NotEqual(t, id, tx.MakeId())
}

func TestSigningDigestExcludesSignatures(t *testing.T) {
	tx := makeTransfer()

	before := tx.SigningDigest()

	_, priv := identity.DeriveKeypair("sender secret")
	tx.Signature = identity.Sign(before, priv)

	// attaching the signature must not move the signing digest
	assert.Equal(t, before, tx.SigningDigest())

	// the second signing digest covers the primary signature
	assert.NotEqual(t, before, tx.SecondSigningDigest())
}

func TestAssetBytes(t *testing.T) {
	vote := &transactionrecord.Transaction{
		Type: transactionrecord.VoteType,
		Asset: transactionrecord.Asset{
			Votes: []diff.Entry{
				diff.NewEntry(diff.Add, "123C"),
				diff.NewEntry(diff.Remove, "456C"),
			},
		},
	}
	assert.Equal(t, []byte("+123C-456C"), vote.AssetBytes())

	username := &transactionrecord.Transaction{
		Type: transactionrecord.UsernameType,
		Asset: transactionrecord.Asset{
			Username: &transactionrecord.UsernameClaim{Alias: "satoshi"},
		},
	}
	assert.Equal(t, []byte("satoshi"), username.AssetBytes())

	transfer := makeTransfer()
	assert.Nil(t, transfer.AssetBytes())
}

// a fractional amount must fail before any processing can start
func TestJsonRejectsFractionalAmount(t *testing.T) {
	var tx transactionrecord.Transaction
	err := json.Unmarshal([]byte(`{"type":0,"amount":10.5}`), &tx)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"type":0,"amount":10}`), &tx)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), tx.Amount)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Transfer", transactionrecord.TransferType.TypeName())
	assert.Equal(t, "Vote", transactionrecord.VoteType.TypeName())
	assert.Equal(t, "*unknown*", transactionrecord.Type(250).TypeName())
	assert.False(t, transactionrecord.Type(250).IsValid())
}
