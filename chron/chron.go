// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// logical chain time
//
// all transaction timestamps count whole seconds since the chain
// epoch; the wall-clock source is pluggable for tests
package chron

import (
	"time"

	lndclock "github.com/lightningnetwork/lnd/clock"
)

// Epoch - the instant logical time zero
var Epoch = time.Date(2016, time.May, 24, 17, 0, 0, 0, time.UTC)

// Clock - supplies the current logical time
type Clock struct {
	source lndclock.Clock
}

// New - a clock over an arbitrary time source
func New(source lndclock.Clock) *Clock {
	return &Clock{source: source}
}

// NewDefault - a clock over the system wall clock
func NewDefault() *Clock {
	return New(lndclock.NewDefaultClock())
}

// Now - whole seconds since the chain epoch
func (c *Clock) Now() uint32 {
	d := c.source.Now().Sub(Epoch)
	if d < 0 {
		return 0
	}
	return uint32(d / time.Second)
}

// ToTime - convert a logical timestamp back to wall time
func ToTime(timestamp uint32) time.Time {
	return Epoch.Add(time.Duration(timestamp) * time.Second)
}
