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

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host is the host of the DNS seed.
	Host string

	// HasFiltering indicates whether the seed supports filtering by
	// service flags.
	HasFiltering bool
}

// Params defines the consensus parameters for a network: mainnet, the
// active testnet, regression test (regtest) or the simulation test network
// (simnet). Every field that influences proof-of-work validation or
// retargeting is read-only configuration; the core never mutates it and
// never reaches for a process-wide default, so callers thread it through
// explicitly on every call.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.CurrencyNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256 in the pre-Cuckoo-hardfork, double-SHA256 era.
	PowLimit *big.Int

	// PowLimitBits is the highest allowed proof of work value for a
	// block in compact form prior to the Cuckoo hardfork.
	PowLimitBits uint32

	// CuckooPowLimit defines the highest allowed proof of work value for
	// a block once Cuckoo Cycle proof of work is active.
	CuckooPowLimit *big.Int

	// CuckooPowLimitBits is CuckooPowLimit in compact form.
	CuckooPowLimitBits uint32

	// CuckooHardforkHeight is the height at which Cuckoo Cycle proof of
	// work takes over from double-SHA256.
	CuckooHardforkHeight int64

	// CuckooGraphSize is G: the cycle-finding graph has 2^(G-1) edges per
	// partition.
	CuckooGraphSize uint8

	// PowTargetTimespan is the desired amount of time that should elapse
	// before the proof of work difficulty is retargeted.
	PowTargetTimespan time.Duration

	// PowTargetSpacing is the desired amount of time to generate each
	// block.
	PowTargetSpacing time.Duration

	// AllowMinDifficultyBlocks defines whether the network allows the
	// minimum difficulty blocks rule, which is used primarily on testnet
	// to allow quickly mining blocks when difficulty is high and there
	// hasn't been a block mined recently.
	AllowMinDifficultyBlocks bool

	// NoRetargeting defines whether the network uses standard retargeting
	// rules, used primarily on regression test (regtest) networks that
	// are meant to be fully deterministic.
	NoRetargeting bool

	// Algorithms records the height and starting difficulty of every
	// proof-of-work algorithm this network has ever activated: the
	// original double-SHA256 algorithm and, for networks that have
	// forked, the Cuckoo Cycle algorithm that replaced it.
	Algorithms []wire.AlgorithmSpec
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.PowTargetTimespan / p.PowTargetSpacing)
}
