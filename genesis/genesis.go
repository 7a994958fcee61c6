// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// constants embedded into the genesis block
//
// transactions carrying the genesis block id bypass balance checks;
// this is the only place a negative balance is permitted
package genesis

// the distinguished genesis block
const (
	BlockId = "7213863999994004849"
)

// IsGenesis - check whether a block id refers to the genesis block
func IsGenesis(blockId string) bool {
	return BlockId == blockId
}
