// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// money is held as an integer count of the smallest unit
const (
	FixedPoint = int64(100000000)
)

// transaction limits
const (
	// maximum delegates a single vote transaction may touch
	MaximumVotes = 33

	// bounds on a registered username
	MinimumUsernameLength = 1
	MaximumUsernameLength = 20

	// seconds a transaction timestamp may run ahead of local time
	TimestampSkewLimit = 15

	// no transaction is admitted below this fee
	MinimumFee = int64(1)
)

// every address ends with this character
const (
	AddressSuffix = "C"
)

// the time for an unconfirmed transaction to expire from the pool
const (
	ReservoirTimeout = 24 * time.Hour
)
