// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"crypto/sha256"

	"github.com/cuckoonet/cuckood/chaincfg/chainhash"
	"github.com/cuckoonet/cuckood/wire"
)

// headerHash returns the standard whole-header proof-of-work hash: the
// double-SHA256 of the header's canonical 80-byte prefix, used for both
// pre-fork PoW and, per the post-fork in-tree consensus behavior this core
// implements, for post-fork cuckoo headers as well (see cuckooKey for the
// hash the cuckoo proof itself is checked against).
func headerHash(header *wire.BlockHeader) chainhash.Hash {
	prefix := header.Canonical80()
	return chainhash.DoubleHashH(prefix[:])
}

// cuckooKey returns the single-SHA256 digest of the header's canonical
// 80-byte prefix. Its first 16 bytes seed the SipHash-2-4 keystream the
// cuckoo graph's edges are derived from.
func cuckooKey(header *wire.BlockHeader) [32]byte {
	prefix := header.Canonical80()
	return sha256.Sum256(prefix[:])
}
