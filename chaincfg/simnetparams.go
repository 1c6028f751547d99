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

// SimNetParams returns the network parameters for the simulation test
// (simnet) network. Simnet retargets on a short window so difficulty
// adjustment behavior can be exercised without waiting on a full mainnet
// interval.
func SimNetParams() *Params {
	simPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
	simCuckooPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	const cuckooHardforkHeight = 288

	return &Params{
		Name:        "simnet",
		Net:         wire.SimNet,
		DefaultPort: "19555",
		DNSSeeds:    nil,

		PowLimit:             simPowLimit,
		PowLimitBits:         bigToCompact(simPowLimit),
		CuckooPowLimit:       simCuckooPowLimit,
		CuckooPowLimitBits:   bigToCompact(simCuckooPowLimit),
		CuckooHardforkHeight: cuckooHardforkHeight,
		CuckooGraphSize:      20,

		PowTargetTimespan:        time.Hour,
		PowTargetSpacing:         time.Minute,
		AllowMinDifficultyBlocks: true,
		NoRetargeting:            false,

		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, HeaderSize: wire.MaxHeaderPayload, Version: 0, Bits: bigToCompact(simPowLimit)},
			{Height: cuckooHardforkHeight, HeaderSize: wire.MaxHeaderPayload, Version: 1, Bits: bigToCompact(simCuckooPowLimit)},
		},
	}
}
