// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/identity"
)

// Type - type code for transactions
type Type uint8

// enumerate the possible transaction types
// this is the first byte of the canonical encoding
const (
	TransferType = Type(iota)
	SecondSignatureType
	VoteType
	UsernameType

	// this item must be last
	InvalidType
)

// Transaction - the unpacked transaction structure
type Transaction struct {
	Id              string               `json:"id,omitempty"`
	BlockId         string               `json:"blockId,omitempty"`
	Type            Type                 `json:"type"`
	Timestamp       uint32               `json:"timestamp"`
	SenderPublicKey identity.PublicKey   `json:"senderPublicKey"`
	SenderId        string               `json:"senderId,omitempty"`
	RecipientId     string               `json:"recipientId,omitempty"`
	Amount          int64                `json:"amount"`
	Fee             int64                `json:"fee"`
	Signature       identity.Signature   `json:"signature,omitempty"`
	SignSignature   identity.Signature   `json:"signSignature,omitempty"`
	Signatures      []identity.Signature `json:"signatures,omitempty"`
	Asset           Asset                `json:"asset"`
}

// Asset - the type-specific payload variants
//
// at most one field is set; shape and validation belong to the
// registered handler for the transaction type
type Asset struct {
	Votes     []diff.Entry   `json:"votes,omitempty"`
	Username  *UsernameClaim `json:"username,omitempty"`
	Signature *SignatureKey  `json:"signature,omitempty"`
}

// UsernameClaim - a human-readable alias bound to a public key
type UsernameClaim struct {
	Alias     string             `json:"alias"`
	PublicKey identity.PublicKey `json:"publicKey"`
}

// SignatureKey - the second-signature registration payload
type SignatureKey struct {
	PublicKey identity.PublicKey `json:"publicKey"`
}

// TypeName - the name of a transaction type as a string
func (t Type) TypeName() string {
	switch t {
	case TransferType:
		return "Transfer"
	case SecondSignatureType:
		return "SecondSignature"
	case VoteType:
		return "Vote"
	case UsernameType:
		return "Username"
	default:
		return "*unknown*"
	}
}

// IsValid - check the type code is a registered kind
func (t Type) IsValid() bool {
	return t < InvalidType
}
