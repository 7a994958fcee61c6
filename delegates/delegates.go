// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// delegate registry collaborator
//
// validates vote targets against the set of registered delegates and
// the voter's current confirmed or unconfirmed vote list
package delegates

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/diff"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/identity"
)

// Delegate - one enrolled delegate
type Delegate struct {
	PublicKey identity.PublicKey
	Address   string
	Username  string
}

// Registry - the set of known delegates
type Registry struct {
	sync.RWMutex
	log         *logger.L
	store       *account.Store
	confirmed   map[string]*Delegate // keyed by address
	unconfirmed map[string]*Delegate
}

// NewRegistry - an empty registry over an account store
func NewRegistry(store *account.Store) *Registry {
	return &Registry{
		log:         logger.New("delegates"),
		store:       store,
		confirmed:   make(map[string]*Delegate),
		unconfirmed: make(map[string]*Delegate),
	}
}

// Register - enroll a confirmed delegate
func (registry *Registry) Register(delegate *Delegate) error {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.confirmed[delegate.Address]; ok {
		return fault.ErrTransactionAlreadyExists
	}
	registry.confirmed[delegate.Address] = delegate
	delete(registry.unconfirmed, delegate.Address)

	registry.log.Infof("registered delegate: %s (%s)", delegate.Username, delegate.Address)
	return nil
}

// RegisterUnconfirmed - enroll a pending delegate
func (registry *Registry) RegisterUnconfirmed(delegate *Delegate) error {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.unconfirmed[delegate.Address]; ok {
		return fault.ErrTransactionAlreadyExists
	}
	registry.unconfirmed[delegate.Address] = delegate
	return nil
}

// GetDelegate - look up a confirmed delegate by public key
func (registry *Registry) GetDelegate(publicKey identity.PublicKey) *Delegate {
	registry.RLock()
	defer registry.RUnlock()
	return registry.confirmed[identity.DeriveAddress(publicKey)]
}

// GetUnconfirmedDelegate - look up a pending delegate by public key
func (registry *Registry) GetUnconfirmedDelegate(publicKey identity.PublicKey) *Delegate {
	registry.RLock()
	defer registry.RUnlock()
	return registry.unconfirmed[identity.DeriveAddress(publicKey)]
}

// CheckDelegates - validate a vote diff list against confirmed state
//
// every target must be a registered delegate; adding an address the
// sender already voted for, or removing one it never voted for, is
// rejected
func (registry *Registry) CheckDelegates(publicKey identity.PublicKey, votes []diff.Entry) error {
	sender := registry.store.GetByPublicKey(publicKey)
	if nil == sender {
		return fault.ErrSenderNotFound
	}
	return registry.check(votes, sender.Delegates)
}

// CheckUnconfirmedDelegates - validate a vote diff list against the
// sender's pending vote list, so conflicting unconfirmed votes from
// the same sender are rejected
func (registry *Registry) CheckUnconfirmedDelegates(publicKey identity.PublicKey, votes []diff.Entry) error {
	sender := registry.store.GetByPublicKey(publicKey)
	if nil == sender {
		return fault.ErrSenderNotFound
	}
	return registry.check(votes, sender.UnconfirmedDelegates)
}

func (registry *Registry) check(votes []diff.Entry, current []string) error {
	registry.RLock()
	defer registry.RUnlock()

	// validate against a working copy so entries within one
	// transaction see the effect of the entries before them
	working := append([]string(nil), current...)

	for _, vote := range votes {
		_, confirmed := registry.confirmed[vote.Value]
		_, pending := registry.unconfirmed[vote.Value]
		if !confirmed && !pending {
			return fault.ErrDelegateNotFound
		}

		at := -1
		for i, address := range working {
			if address == vote.Value {
				at = i
				break
			}
		}

		switch vote.Sign {
		case diff.Add:
			if at >= 0 {
				return fault.ErrAlreadyVotedForDelegate
			}
			working = append(working, vote.Value)
		case diff.Remove:
			if at < 0 {
				return fault.ErrNotVotedForDelegate
			}
			working = append(working[:at], working[at+1:]...)
		default:
			return fault.ErrInvalidDiffEntry
		}
	}
	return nil
}
