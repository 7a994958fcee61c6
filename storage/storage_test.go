// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celestium/celestiumd/storage"
)

func TestPoolRoundTrip(t *testing.T) {
	store, err := storage.NewEphemeral()
	assert.NoError(t, err)
	defer store.Close()

	assert.False(t, store.Transactions.Has("12345"))
	assert.Nil(t, store.Transactions.Get("12345"))

	assert.NoError(t, store.Transactions.Put("12345", []byte("payload")))
	assert.True(t, store.Transactions.Has("12345"))
	assert.Equal(t, []byte("payload"), store.Transactions.Get("12345"))

	assert.NoError(t, store.Transactions.Delete("12345"))
	assert.False(t, store.Transactions.Has("12345"))
}

// identical keys in different pools must not collide
func TestPoolsArePrefixIsolated(t *testing.T) {
	store, err := storage.NewEphemeral()
	assert.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Votes.Put("abc", []byte("votes")))
	assert.NoError(t, store.Usernames.Put("abc", []byte("alias")))

	assert.Equal(t, []byte("votes"), store.Votes.Get("abc"))
	assert.Equal(t, []byte("alias"), store.Usernames.Get("abc"))
	assert.False(t, store.Signatures.Has("abc"))
}
