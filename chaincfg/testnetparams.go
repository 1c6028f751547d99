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

// TestNet3Params returns the network parameters for the test network.
func TestNet3Params() *Params {
	testPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 232), bigOne)
	testCuckooPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)

	const cuckooHardforkHeight = 1200

	return &Params{
		Name:        "testnet3",
		Net:         wire.TestNet3,
		DefaultPort: "19666",
		DNSSeeds: []DNSSeed{
			{"testnet-seed.cuckoonet.org", true},
		},

		PowLimit:             testPowLimit,
		PowLimitBits:         bigToCompact(testPowLimit),
		CuckooPowLimit:       testCuckooPowLimit,
		CuckooPowLimitBits:   bigToCompact(testCuckooPowLimit),
		CuckooHardforkHeight: cuckooHardforkHeight,
		CuckooGraphSize:      29,

		PowTargetTimespan: 14 * 24 * time.Hour,
		PowTargetSpacing:  defaultTargetTimePerBlock,

		// Testnet allows the min-difficulty-blocks escape hatch: once a
		// block is more than twice the target spacing late, the next
		// block may be mined straight at the network's PoW limit.
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            false,

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, HeaderSize: wire.MaxHeaderPayload, Version: 0, Bits: bigToCompact(testPowLimit)},
			{Height: cuckooHardforkHeight, HeaderSize: wire.MaxHeaderPayload, Version: 1, Bits: bigToCompact(testCuckooPowLimit)},
		},
	}
}
