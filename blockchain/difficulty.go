// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/cuckoonet/cuckood/blockchain/standalone"
	"github.com/cuckoonet/cuckood/chaincfg"
)

// emergencyRetargetSpacingMultiple is the number of target spacings the
// median-time-past span between the tip and its ancestor 6 blocks back (7
// blocks in all) must exceed before the emergency retarget rule kicks in.
const emergencyRetargetSpacingMultiple = 36

// NextRequiredDifficulty calculates the difficulty, in compact ("nBits")
// form, required for the block that follows tip.
//
// tip must be non-nil and, on an interval boundary, must have an ancestor
// at height tip.Height-(interval-1); both are always true once enough
// history has accumulated, so violations are treated as caller bugs rather
// than recoverable errors.
//
// nextHeaderTime is the timestamp of the block being built on top of tip;
// it is only consulted by the testnet minimum-difficulty rule.
func NextRequiredDifficulty(tip *HeaderNode, nextHeaderTime int64, params *chaincfg.Params) uint32 {
	height := tip.Height + 1
	interval := params.DifficultyAdjustmentInterval()
	spacing := int64(params.PowTargetSpacing / time.Second)
	timespan := int64(params.PowTargetTimespan / time.Second)

	activeLimit := params.PowLimit
	if height >= params.CuckooHardforkHeight {
		activeLimit = params.CuckooPowLimit
	}
	activeLimitBits := standalone.BigToCompact(activeLimit)

	// Case A: not an interval boundary.
	if height%interval != 0 {
		if params.AllowMinDifficultyBlocks {
			// Allow a block to be mined at the minimum difficulty once
			// too much time has elapsed without one, and otherwise
			// reuse the difficulty of the last block that wasn't itself
			// subject to this rule.
			if nextHeaderTime > tip.Timestamp+2*spacing {
				return activeLimitBits
			}

			iter := tip
			for iter.Parent != nil && iter.Height%interval != 0 &&
				iter.Bits == activeLimitBits {
				iter = iter.Parent
			}
			return iter.Bits
		}

		if height > params.CuckooHardforkHeight && tip.Bits != activeLimitBits {
			if bits, ok := emergencyRetarget(tip, height, spacing, params); ok {
				return bits
			}
		}

		return tip.Bits
	}

	// Case B: interval boundary at the exact fork height resets to the
	// easiest legal target, giving the new algorithm room to settle.
	if height == params.CuckooHardforkHeight {
		return activeLimitBits
	}

	// Case C: ordinary retarget.
	if params.NoRetargeting {
		return tip.Bits
	}

	first := tip.Ancestor(tip.Height - (interval - 1))
	actual := tip.Timestamp - first.Timestamp

	minTimespan := timespan / 4
	maxTimespan := timespan * 4
	switch {
	case actual < minTimespan:
		actual = minTimespan
	case actual > maxTimespan:
		actual = maxTimespan
	}

	// Multiply before dividing to preserve precision in this fixed-point
	// step; changing the order would change the consensus result.
	newTarget := standalone.CompactToBig(tip.Bits)
	newTarget.Mul(newTarget, big.NewInt(actual))
	newTarget.Div(newTarget, big.NewInt(timespan))

	if newTarget.Cmp(activeLimit) > 0 {
		newTarget = activeLimit
	}

	log.Debugf("Difficulty retarget at block height %d", height)
	log.Debugf("Old target %08x, actual timespan %d, target timespan %d",
		tip.Bits, actual, timespan)

	return standalone.BigToCompact(newTarget)
}

// emergencyRetarget applies the single-block difficulty relaxation that
// activates after the hardfork when 7 consecutive blocks have spanned more
// than emergencyRetargetSpacingMultiple times the target spacing. It
// reports ok=false when the triggering conditions aren't met, in which case
// the caller falls back to reusing tip's difficulty unchanged.
func emergencyRetarget(tip *HeaderNode, height, spacing int64, params *chaincfg.Params) (uint32, bool) {
	anc := tip.Ancestor(height - 1 - 6)
	if anc == nil || anc.Bits != tip.Bits {
		return 0, false
	}

	if tip.MedianTimePast()-anc.MedianTimePast() <= spacing*emergencyRetargetSpacingMultiple {
		return 0, false
	}

	tipTarget := standalone.CompactToBig(tip.Bits)

	// Walk back from anc looking for the first ancestor whose target is
	// strictly easier (larger) than tip's.
	prev := anc
	prevTarget := standalone.CompactToBig(prev.Bits)
	for prev.Parent != nil && prevTarget.Cmp(tipTarget) <= 0 {
		prev = prev.Parent
		prevTarget = standalone.CompactToBig(prev.Bits)
	}
	if prevTarget.Cmp(tipTarget) <= 0 {
		return 0, false
	}

	halfway := new(big.Int).Add(tipTarget, prevTarget)
	halfway.Div(halfway, big.NewInt(2))

	if halfway.Cmp(params.CuckooPowLimit) > 0 {
		halfway = params.CuckooPowLimit
	}

	return standalone.BigToCompact(halfway), true
}
