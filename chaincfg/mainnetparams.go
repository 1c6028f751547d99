// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/cuckoonet/cuckood/wire"
)

// bigOne is 1 represented as a big.Int. It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// defaultTargetTimePerBlock is the default target time per block for the
// main network and parameters that have not overridden it.
const defaultTargetTimePerBlock = 5 * time.Minute

// MainNetParams returns the network parameters for the main network.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a block can have
	// for the main network before the Cuckoo Cycle hardfork. It is the
	// value 2^224 - 1.
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// mainCuckooPowLimit is the highest proof of work value a block can
	// have once Cuckoo Cycle activates. It is deliberately easier than
	// mainPowLimit so the new algorithm has room to find its own steady
	// state, per the fork-boundary reset rule.
	mainCuckooPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	const cuckooHardforkHeight = 600000

	return &Params{
		Name:        "mainnet",
		Net:         wire.MainNet,
		DefaultPort: "9666",
		DNSSeeds: []DNSSeed{
			{"seed.cuckoonet.org", true},
			{"seed2.cuckoonet.org", true},
		},

		PowLimit:             mainPowLimit,
		PowLimitBits:         bigToCompact(mainPowLimit),
		CuckooPowLimit:       mainCuckooPowLimit,
		CuckooPowLimitBits:   bigToCompact(mainCuckooPowLimit),
		CuckooHardforkHeight: cuckooHardforkHeight,
		CuckooGraphSize:      29,

		PowTargetTimespan:        14 * 24 * time.Hour,
		PowTargetSpacing:         defaultTargetTimePerBlock,
		AllowMinDifficultyBlocks: false,
		NoRetargeting:            false,

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, HeaderSize: wire.MaxHeaderPayload, Version: 0, Bits: bigToCompact(mainPowLimit)},
			{Height: cuckooHardforkHeight, HeaderSize: wire.MaxHeaderPayload, Version: 1, Bits: bigToCompact(mainCuckooPowLimit)},
		},
	}
}
