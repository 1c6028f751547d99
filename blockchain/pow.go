// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/cuckoonet/cuckood/blockchain/standalone"
	"github.com/cuckoonet/cuckood/chaincfg"
	"github.com/cuckoonet/cuckood/chaincfg/chainhash"
	"github.com/cuckoonet/cuckood/cuckoo"
	"github.com/cuckoonet/cuckood/wire"
)

// HashToBig converts the given hash into a big.Int, interpreting the bytes
// as a little-endian number, which is the order block hashes are compared
// against a target in.
func HashToBig(hash *chainhash.Hash) *big.Int {
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// CheckProofOfWork verifies that header's claimed difficulty target is
// within the consensus-allowed range and that its proof of work meets that
// target: every header's double-SHA256 header hash is compared against the
// target, and a header for which header.IsCuckooPow is true must also carry
// a valid cuckoo cycle proof. It never looks at the chain index: the caller is responsible for
// having already confirmed the header's nBits matches what
// NextRequiredDifficulty would compute for its height.
func CheckProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) bool {
	target, negative, overflow := standalone.SetCompact(header.Bits)
	if negative || overflow || target.Sign() == 0 {
		return false
	}

	activeLimit := params.PowLimit
	if header.IsCuckooPow() {
		activeLimit = params.CuckooPowLimit
	}
	if target.Cmp(activeLimit) > 0 {
		return false
	}

	if header.IsCuckooPow() {
		key := cuckooKey(header)
		if cuckoo.Verify(header.CuckooProof, key, uint(params.CuckooGraphSize-1)) != cuckoo.OK {
			return false
		}
	}

	hash := headerHash(header)
	return HashToBig(&hash).Cmp(target) <= 0
}
