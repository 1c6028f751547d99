// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Package cuckoo verifies Cuckoo Cycle proofs of work: a 42-nonce solution
// is a simple cycle of length 42 in an implicit bipartite graph whose edges
// are derived from a SipHash-2-4 keystream.
package cuckoo

// ProofSize is the number of nonces in a valid cycle.
const ProofSize = 42

// VerifyCode enumerates the possible outcomes of Verify. Only OK means the
// proof is a valid cycle; the remaining codes exist so diagnostic tooling
// can distinguish why a proof was rejected. CheckProofOfWork collapses all
// of them other than OK into a single reject.
type VerifyCode int

const (
	// OK indicates the proof is a valid 42-cycle.
	OK VerifyCode = iota

	// TooBig indicates some nonce exceeds the edge mask for the graph size.
	TooBig

	// TooSmall indicates the nonces are not strictly ascending.
	TooSmall

	// NonMatching indicates the endpoints don't XOR to zero, so some node
	// in the graph has odd degree and no cycle can exist.
	NonMatching

	// Branch indicates some endpoint is shared by more than two edges.
	Branch

	// DeadEnd indicates the traversal reached an endpoint unique to its
	// edge and could not continue.
	DeadEnd

	// ShortCycle indicates the traversal returned to the start before
	// visiting all ProofSize edges.
	ShortCycle
)

// String implements fmt.Stringer.
func (c VerifyCode) String() string {
	switch c {
	case OK:
		return "OK"
	case TooBig:
		return "TOO_BIG"
	case TooSmall:
		return "TOO_SMALL"
	case NonMatching:
		return "NON_MATCHING"
	case Branch:
		return "BRANCH"
	case DeadEnd:
		return "DEAD_END"
	case ShortCycle:
		return "SHORT_CYCLE"
	default:
		return "UNKNOWN"
	}
}

// node derives the node identifier for one endpoint of the edge assigned to
// nonce. uorv selects which endpoint (0 = U partition, 1 = V partition); the
// low bit of the returned identifier always equals uorv, which is what
// makes the graph bipartite.
func node(keys Keys, nonce uint64, uorv uint64, edgemask uint64) uint64 {
	return ((siphash24(keys, 2*nonce+uorv) & edgemask) << 1) | uorv
}

// Verify checks that nonces is a valid 42-cycle in the Cuckoo Cycle graph
// keyed by the first 16 bytes of key, with 2^edgebits edges per partition.
//
// The scratch state is a fixed 2*ProofSize array; there is no dynamic
// allocation and the whole check runs in O(ProofSize^2) time.
func Verify(nonces [ProofSize]uint32, key [32]byte, edgebits uint) VerifyCode {
	edgemask := uint64(1)<<edgebits - 1
	keys := SetKeys(key[:16])

	var uvs [2 * ProofSize]uint64
	var xor0, xor1 uint64

	for n, nonce := range nonces {
		if uint64(nonce) > edgemask {
			return TooBig
		}
		if n > 0 && nonce <= nonces[n-1] {
			return TooSmall
		}

		u := node(keys, uint64(nonce), 0, edgemask)
		v := node(keys, uint64(nonce), 1, edgemask)
		uvs[2*n] = u
		uvs[2*n+1] = v
		xor0 ^= u
		xor1 ^= v
	}

	if xor0|xor1 != 0 {
		return NonMatching
	}

	return traverse(uvs)
}

// traverse walks the cycle formed by uvs starting from index 0, assuming
// the caller has already established that every endpoint appears an even
// number of times (the NonMatching precondition). At each step, every other
// same-partition endpoint (the positions two steps away, wrapping around
// the 2*ProofSize array) is a candidate match: exactly one must match for
// the traversal to be a simple cycle, more than one means a node branches
// into more than two edges, and none means the endpoint is a dead end.
func traverse(uvs [2 * ProofSize]uint64) VerifyCode {
	n := 0
	i := 0
	for {
		match := -1
		matches := 0
		for k := (i + 2) % (2 * ProofSize); k != i; k = (k + 2) % (2 * ProofSize) {
			if uvs[k] == uvs[i] {
				matches++
				match = k
			}
		}

		switch {
		case matches > 1:
			return Branch
		case matches == 0:
			return DeadEnd
		}

		i = match ^ 1
		n++
		if i == 0 {
			break
		}
	}

	if n == ProofSize {
		return OK
	}
	return ShortCycle
}
