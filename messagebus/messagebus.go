// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// broadcast collaborator notification queue
//
// the pipeline pushes every admitted transaction here; delivery and
// fan-out are the consumer's responsibility
package messagebus

import (
	"github.com/celestium/celestiumd/transactionrecord"
)

// internal constants
const (
	queueSize = 1000
)

// Announcement - one admitted transaction and its broadcast flag
type Announcement struct {
	Tx        *transactionrecord.Transaction
	Broadcast bool
}

// Queue - a buffered announcement channel with an explicit owner
type Queue struct {
	c chan Announcement
}

// New - create a queue
func New() *Queue {
	return &Queue{
		c: make(chan Announcement, queueSize),
	}
}

// Send - queue an announcement, dropping when the consumer lags
func (queue *Queue) Send(tx *transactionrecord.Transaction, broadcast bool) {
	select {
	case queue.c <- Announcement{Tx: tx, Broadcast: broadcast}:
	default:
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Announcement {
	return queue.c
}
