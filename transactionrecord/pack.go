// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/celestium/celestiumd/constants"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - the canonical byte encoding
//
// type(1) ‖ timestamp(4 LE) ‖ sender public key ‖ recipient address
// as 8-byte big-endian integer, zero-fill if absent ‖ amount(8 LE) ‖
// asset bytes ‖ signature ‖ second signature
func (tx *Transaction) Pack() Packed {
	message := make([]byte, 0, 128)

	message = append(message, byte(tx.Type))

	message = appendUint32(message, tx.Timestamp)
	message = append(message, tx.SenderPublicKey...)
	message = append(message, packAddress(tx.RecipientId)...)
	message = appendUint64(message, uint64(tx.Amount))
	message = append(message, tx.AssetBytes()...)

	if 0 != len(tx.Signature) {
		message = append(message, tx.Signature...)
	}
	if 0 != len(tx.SignSignature) {
		message = append(message, tx.SignSignature...)
	}
	return message
}

// AssetBytes - the canonical encoding of the type-specific payload
func (tx *Transaction) AssetBytes() []byte {
	switch tx.Type {
	case SecondSignatureType:
		if nil != tx.Asset.Signature {
			return tx.Asset.Signature.PublicKey
		}
	case VoteType:
		if 0 != len(tx.Asset.Votes) {
			s := make([]string, len(tx.Asset.Votes))
			for i, v := range tx.Asset.Votes {
				s[i] = v.String()
			}
			return []byte(strings.Join(s, ""))
		}
	case UsernameType:
		if nil != tx.Asset.Username {
			return []byte(tx.Asset.Username.Alias)
		}
	}
	return nil
}

// SigningDigest - the hash covered by the primary signature
//
// verification strips exactly the trailing 64 bytes, or 128 bytes if
// a second signature is present, leaving the unsigned encoding
func (tx *Transaction) SigningDigest() []byte {
	unsigned := *tx
	unsigned.Signature = nil
	unsigned.SignSignature = nil
	digest := sha256.Sum256(unsigned.Pack())
	return digest[:]
}

// SecondSigningDigest - the hash covered by the second signature
//
// strips only the trailing second signature, so the primary
// signature is under the second one
func (tx *Transaction) SecondSigningDigest() []byte {
	signed := *tx
	signed.SignSignature = nil
	digest := sha256.Sum256(signed.Pack())
	return digest[:]
}

// MakeId - the deterministic transaction id
//
// SHA-256 of the full canonical bytes, low 8 bytes in reversed order
// as an unsigned big integer in decimal
func (tx *Transaction) MakeId() string {
	hash := sha256.Sum256(tx.Pack())

	temp := make([]byte, 8)
	for i := 0; i < 8; i += 1 {
		temp[i] = hash[7-i]
	}

	return new(big.Int).SetBytes(temp).String()
}

// encode a decimal address into its 8-byte big-endian form
// empty, malformed or overlong values become zero-fill
func packAddress(address string) []byte {
	buffer := make([]byte, 8)

	digits := strings.TrimSuffix(address, constants.AddressSuffix)
	if 0 == len(digits) {
		return buffer
	}

	value, ok := new(big.Int).SetString(digits, 10)
	if !ok || value.Sign() < 0 || value.BitLen() > 64 {
		return buffer
	}

	value.FillBytes(buffer)
	return buffer
}

func appendUint32(buffer []byte, value uint32) []byte {
	valueBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(valueBytes, value)
	return append(buffer, valueBytes...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(valueBytes, value)
	return append(buffer, valueBytes...)
}
