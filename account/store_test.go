// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/identity"
)

func TestGetOrCreate(t *testing.T) {
	store := account.NewStore()

	assert.Nil(t, store.Get("12345C"))

	created := store.GetOrCreate("12345C")
	assert.Equal(t, "12345C", created.Address)
	assert.Equal(t, int64(0), created.Balance)
	assert.Equal(t, int64(0), created.UnconfirmedBalance)

	assert.NotNil(t, store.Get("12345C"))
}

func TestGetByPublicKey(t *testing.T) {
	store := account.NewStore()

	pub, _ := identity.DeriveKeypair("store test secret")
	address := identity.DeriveAddress(pub)

	store.GetOrCreate(address)

	found := store.GetByPublicKey(pub)
	assert.NotNil(t, found)
	assert.Equal(t, address, found.Address)
}

func TestMergeBalanceDeltas(t *testing.T) {
	store := account.NewStore()
	store.GetOrCreate("12345C")

	_, err := store.Merge("12345C", account.Patch{
		Balance:            account.Int64(100),
		UnconfirmedBalance: account.Int64(100),
	})
	assert.NoError(t, err)

	_, err = store.Merge("12345C", account.Patch{
		Balance: account.Int64(-30),
	})
	assert.NoError(t, err)

	a := store.Get("12345C")
	assert.Equal(t, int64(70), a.Balance)
	assert.Equal(t, int64(100), a.UnconfirmedBalance)
}

func TestMergeDelegateDiffs(t *testing.T) {
	store := account.NewStore()
	store.GetOrCreate("12345C")

	votes := []diff.Entry{
		diff.NewEntry(diff.Add, "100C"),
		diff.NewEntry(diff.Add, "200C"),
	}

	applied, err := store.Merge("12345C", account.Patch{Delegates: votes})
	assert.NoError(t, err)
	assert.Equal(t, votes, applied.Delegates)

	a := store.Get("12345C")
	assert.ElementsMatch(t, []string{"100C", "200C"}, a.Delegates)

	// undo with the reversal of what was applied
	_, err = store.Merge("12345C", account.Patch{Delegates: diff.Reverse(applied.Delegates)})
	assert.NoError(t, err)

	a = store.Get("12345C")
	assert.Empty(t, a.Delegates)
}

func TestSetOverwritesScalars(t *testing.T) {
	store := account.NewStore()
	store.GetOrCreate("12345C")

	err := store.Set("12345C", account.Patch{
		Username:            account.String("satoshi"),
		UnconfirmedUsername: account.String(""),
	})
	assert.NoError(t, err)

	a := store.Get("12345C")
	assert.Equal(t, "satoshi", a.Username)
	assert.Equal(t, "", a.UnconfirmedUsername)

	found := store.GetByUsername("satoshi")
	assert.NotNil(t, found)
	assert.Equal(t, "12345C", found.Address)
	assert.Nil(t, store.GetByUsername("nakamoto"))
}

// snapshots must not alias live store state
func TestGetReturnsSnapshot(t *testing.T) {
	store := account.NewStore()
	store.GetOrCreate("12345C")
	store.Merge("12345C", account.Patch{
		Delegates: []diff.Entry{diff.NewEntry(diff.Add, "100C")},
	})

	a := store.Get("12345C")
	a.Balance = 999
	a.Delegates[0] = "mutated"

	b := store.Get("12345C")
	assert.Equal(t, int64(0), b.Balance)
	assert.Equal(t, []string{"100C"}, b.Delegates)
}

// concurrent merges must each land exactly once
func TestMergeIsLinearized(t *testing.T) {
	store := account.NewStore()
	store.GetOrCreate("12345C")

	var wg sync.WaitGroup
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Merge("12345C", account.Patch{Balance: account.Int64(1)})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), store.Get("12345C").Balance)
}
