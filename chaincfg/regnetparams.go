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

// RegNetParams returns the network parameters for the regression test
// (regtest) network. Difficulty never changes on regnet: tests mine at a
// fixed, trivially-easy target so they are deterministic.
func RegNetParams() *Params {
	regPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	regCuckooPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	const cuckooHardforkHeight = 150

	return &Params{
		Name:        "regnet",
		Net:         wire.RegNet,
		DefaultPort: "19556",
		DNSSeeds:    nil,

		PowLimit:             regPowLimit,
		PowLimitBits:         bigToCompact(regPowLimit),
		CuckooPowLimit:       regCuckooPowLimit,
		CuckooPowLimitBits:   bigToCompact(regCuckooPowLimit),
		CuckooHardforkHeight: cuckooHardforkHeight,
		CuckooGraphSize:      20,

		PowTargetTimespan:        14 * 24 * time.Hour,
		PowTargetSpacing:         defaultTargetTimePerBlock,
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            true,

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, HeaderSize: wire.MaxHeaderPayload, Version: 0, Bits: bigToCompact(regPowLimit)},
			{Height: cuckooHardforkHeight, HeaderSize: wire.MaxHeaderPayload, Version: 1, Bits: bigToCompact(regCuckooPowLimit)},
		},
	}
}
