// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/cuckoonet/cuckood/blockchain/standalone"
)

// bigToCompact is a convenience wrapper around standalone.BigToCompact used
// when building the genesis difficulty bits for a network's parameters.
func bigToCompact(n *big.Int) uint32 {
	return standalone.BigToCompact(n)
}
