// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// unconfirmed transaction pool and admission pipeline
//
// all state mutation is serialized under a single writer lock so one
// admission observes the full effect of the previous one; transactions
// failing the economic checks are quarantined as suspected double
// spends and block resubmission of the same id
package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/assets"
	"github.com/celestium/celestiumd/background"
	"github.com/celestium/celestiumd/chron"
	"github.com/celestium/celestiumd/constants"
	"github.com/celestium/celestiumd/messagebus"
	"github.com/celestium/celestiumd/storage"
	"github.com/celestium/celestiumd/transactionrecord"
)

// how often the expiry background scans the pool
const expiryCycleTime = time.Minute

// one pooled transaction and its eviction deadline
type unconfirmedItem struct {
	tx      *transactionrecord.Transaction
	expires uint32
}

// Reservoir - the pool of admitted but unconfirmed transactions
type Reservoir struct {
	sync.RWMutex
	log *logger.L

	pool       map[string]*unconfirmedItem
	quarantine *cache.Cache

	accounts *account.Store
	registry *assets.Registry
	pools    *storage.Store
	bus      *messagebus.Queue
	clock    *chron.Clock

	processes *background.T
}

// New - create an empty reservoir over its collaborators
func New(
	accounts *account.Store,
	registry *assets.Registry,
	pools *storage.Store,
	bus *messagebus.Queue,
	clock *chron.Clock,
) *Reservoir {
	return &Reservoir{
		log:        logger.New("reservoir"),
		pool:       make(map[string]*unconfirmedItem),
		quarantine: cache.New(constants.ReservoirTimeout, 10*time.Minute),
		accounts:   accounts,
		registry:   registry,
		pools:      pools,
		bus:        bus,
		clock:      clock,
	}
}

// Start - run the expiry background
func (rsvr *Reservoir) Start() {
	rsvr.processes = background.Start(background.Processes{
		&expiryData{rsvr: rsvr},
	}, rsvr.log)
	rsvr.log.Info("started")
}

// Stop - shut down the expiry background
func (rsvr *Reservoir) Stop() {
	rsvr.processes.Stop()
	rsvr.log.Info("stopped")
}
