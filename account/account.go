// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// per-account balances and attributes
//
// confirmed fields are durable state after block inclusion;
// unconfirmed fields are tentative state the admission pipeline may
// mutate before confirmation
package account

import (
	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/identity"
)

// Account - the full per-account state
type Account struct {
	Address              string             `json:"address"`
	PublicKey            identity.PublicKey `json:"publicKey,omitempty"`
	Balance              int64              `json:"balance"`
	UnconfirmedBalance   int64              `json:"unconfirmedBalance"`
	SecondSignature      bool               `json:"secondSignature"`
	UnconfirmedSignature bool               `json:"unconfirmedSignature"`
	SecondPublicKey      identity.PublicKey `json:"secondPublicKey,omitempty"`
	Delegates            []string           `json:"delegates,omitempty"`
	UnconfirmedDelegates []string           `json:"unconfirmedDelegates,omitempty"`
	MultiSignatures      []string           `json:"multiSignatures,omitempty"`
	MultiMin             int                `json:"multiMin,omitempty"`
	Username             string             `json:"username,omitempty"`
	UnconfirmedUsername  string             `json:"unconfirmedUsername,omitempty"`
}

// Patch - a set of changes to apply to one account
//
// Merge treats the balance fields as signed deltas and the delegate
// fields as diff lists; Set overwrites every present field. nil
// pointer fields are left untouched by both
type Patch struct {
	PublicKey            identity.PublicKey
	Balance              *int64
	UnconfirmedBalance   *int64
	SecondSignature      *bool
	UnconfirmedSignature *bool
	SecondPublicKey      *identity.PublicKey
	Username             *string
	UnconfirmedUsername  *string
	Delegates            []diff.Entry
	UnconfirmedDelegates []diff.Entry
}

// helpers for building patches

// Int64 - pointer to an int64 literal
func Int64(v int64) *int64 { return &v }

// Bool - pointer to a bool literal
func Bool(v bool) *bool { return &v }

// String - pointer to a string literal
func String(v string) *string { return &v }

// Key - pointer to a public key literal
func Key(v identity.PublicKey) *identity.PublicKey { return &v }

// duplicate an account so callers never alias store-owned state
func (account *Account) clone() *Account {
	c := *account
	c.PublicKey = append(identity.PublicKey(nil), account.PublicKey...)
	c.SecondPublicKey = append(identity.PublicKey(nil), account.SecondPublicKey...)
	c.Delegates = append([]string(nil), account.Delegates...)
	c.UnconfirmedDelegates = append([]string(nil), account.UnconfirmedDelegates...)
	c.MultiSignatures = append([]string(nil), account.MultiSignatures...)
	return &c
}
