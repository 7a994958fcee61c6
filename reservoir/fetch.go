// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sort"

	"github.com/celestium/celestiumd/transactionrecord"
)

// GetUnconfirmed - fetch one pooled transaction by id
func (rsvr *Reservoir) GetUnconfirmed(id string) (*transactionrecord.Transaction, bool) {
	rsvr.RLock()
	defer rsvr.RUnlock()

	item, ok := rsvr.pool[id]
	if !ok {
		return nil, false
	}
	return item.tx, true
}

// ListUnconfirmed - every pooled transaction, newest first
func (rsvr *Reservoir) ListUnconfirmed() []*transactionrecord.Transaction {
	rsvr.RLock()
	defer rsvr.RUnlock()

	list := make([]*transactionrecord.Transaction, 0, len(rsvr.pool))
	for _, item := range rsvr.pool {
		list = append(list, item.tx)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Timestamp > list[j].Timestamp
	})
	return list
}

// FetchReady - up to count pooled transactions eligible for
// confirmation, oldest first so earlier submissions confirm earlier
func (rsvr *Reservoir) FetchReady(count int) []*transactionrecord.Transaction {
	rsvr.RLock()
	defer rsvr.RUnlock()

	list := make([]*transactionrecord.Transaction, 0, len(rsvr.pool))
	for _, item := range rsvr.pool {
		handler, err := rsvr.registry.Get(item.tx.Type)
		if nil != err {
			continue
		}
		sender := rsvr.accounts.Get(item.tx.SenderId)
		if nil == sender {
			continue
		}
		if handler.IsReady(item.tx, sender) {
			list = append(list, item.tx)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Timestamp < list[j].Timestamp
	})

	if count > 0 && len(list) > count {
		list = list[:count]
	}
	return list
}

// IsQuarantined - check whether an id was refused as a double spend
func (rsvr *Reservoir) IsQuarantined(id string) bool {
	_, ok := rsvr.quarantine.Get(id)
	return ok
}

// ReadCounters - pool and quarantine sizes
func (rsvr *Reservoir) ReadCounters() (int, int) {
	rsvr.RLock()
	defer rsvr.RUnlock()
	return len(rsvr.pool), rsvr.quarantine.ItemCount()
}
