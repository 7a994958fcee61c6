// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// keypair and address derivation, transaction signing
//
// a secret passphrase deterministically yields the same keypair, so
// wallets never need to store private keys
package identity

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/ed25519"

	"github.com/celestium/celestiumd/constants"
)

// PublicKey - raw Ed25519 public key bytes
type PublicKey []byte

// PrivateKey - raw Ed25519 private key bytes
type PrivateKey []byte

// DeriveKeypair - derive an Ed25519 keypair from a secret passphrase
//
// the SHA-256 hash of the secret is the Ed25519 seed
func DeriveKeypair(secret string) (PublicKey, PrivateKey) {
	hash := sha256.Sum256([]byte(secret))
	priv := ed25519.NewKeyFromSeed(hash[:])
	pub := priv.Public().(ed25519.PublicKey)
	return PublicKey(pub), PrivateKey(priv)
}

// DeriveAddress - derive the short numeric address for a public key
//
// SHA-256 of the key, low 8 bytes in reversed order as an unsigned
// big integer, with the fixed suffix character appended
func DeriveAddress(publicKey PublicKey) string {
	hash := sha256.Sum256(publicKey)

	temp := make([]byte, 8)
	for i := 0; i < 8; i += 1 {
		temp[i] = hash[7-i]
	}

	return new(big.Int).SetBytes(temp).String() + constants.AddressSuffix
}

// Sign - produce an Ed25519 signature over a hash
func Sign(hash []byte, privateKey PrivateKey) Signature {
	return Signature(ed25519.Sign(ed25519.PrivateKey(privateKey), hash))
}

// Verify - check an Ed25519 signature over a hash
//
// never propagates a fault: malformed keys or signatures simply
// verify as false
func Verify(hash []byte, signature Signature, publicKey PublicKey) (ok bool) {
	if ed25519.PublicKeySize != len(publicKey) {
		return false
	}
	if ed25519.SignatureSize != len(signature) {
		return false
	}

	// ed25519.Verify panics on malformed input sizes
	defer func() {
		if nil != recover() {
			ok = false
		}
	}()

	return ed25519.Verify(ed25519.PublicKey(publicKey), hash, signature)
}
