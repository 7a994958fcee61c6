// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// background that evicts pooled transactions past their deadline,
// refunding their tentative effects
type expiryData struct {
	rsvr *Reservoir
}

// Run - the expiry loop
func (data *expiryData) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(expiryCycleTime):
			data.expire(log)
		}
	}
}

func (data *expiryData) expire(log *logger.L) {
	rsvr := data.rsvr
	now := rsvr.clock.Now()

	rsvr.Lock()
	defer rsvr.Unlock()

	for id, item := range rsvr.pool {
		if item.expires > now {
			continue
		}
		err := rsvr.remove(id)
		if nil != err {
			log.Errorf("expire %s: %s", id, err)
			continue
		}
		log.Infof("expired: %s", id)
	}
}
