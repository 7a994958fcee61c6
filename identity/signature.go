// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/hex"
)

// Signature - the type for a signature
type Signature []byte

// String - convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}

// MarshalText - convert public key to text
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(publicKey))
	b := make([]byte, size)
	hex.Encode(b, publicKey)
	return b, nil
}

// UnmarshalText - convert text into a public key
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	k := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(k, s)
	if nil != err {
		return err
	}
	*publicKey = k[:byteCount]
	return nil
}

// String - convert a public key to hex string for use by the fmt package (for %s)
func (publicKey PublicKey) String() string {
	return hex.EncodeToString(publicKey)
}
