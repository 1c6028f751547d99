// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import "testing"

// simpleCycleUVs builds the uvs array for a single ring that alternates
// sharing a node across U and V endpoints, which is exactly what a valid
// 42-cycle looks like once the siphash-derived node identifiers are
// substituted for the synthetic ids used here.
func simpleCycleUVs() [2 * ProofSize]uint64 {
	shared := make([]uint64, ProofSize)
	for k := range shared {
		shared[k] = uint64(k + 1)
	}

	var uvs [2 * ProofSize]uint64
	for k := 0; k < ProofSize; k++ {
		prev := (k - 1 + ProofSize) % ProofSize
		if k%2 == 0 {
			uvs[2*k] = shared[k]
			uvs[2*k+1] = shared[prev]
		} else {
			uvs[2*k] = shared[prev]
			uvs[2*k+1] = shared[k]
		}
	}
	return uvs
}

func TestTraverseOK(t *testing.T) {
	if got := traverse(simpleCycleUVs()); got != OK {
		t.Fatalf("traverse() = %s, want OK", got)
	}
}

func TestTraverseBranch(t *testing.T) {
	uvs := simpleCycleUVs()

	// Make edge 2's U endpoint collide with edge 0's U endpoint (dropping
	// its match with edge 3). Node 0 (index 0) now has three edges sharing
	// its U value: 0, 1 and 2.
	uvs[2*2] = uvs[0]

	if got := traverse(uvs); got != Branch {
		t.Fatalf("traverse() = %s, want BRANCH", got)
	}
}

func TestTraverseDeadEnd(t *testing.T) {
	uvs := simpleCycleUVs()

	// Give edge 1's U endpoint a value nothing else shares, breaking the
	// link back out of node 0.
	uvs[2*1] = 0xdeadbeef

	if got := traverse(uvs); got != DeadEnd {
		t.Fatalf("traverse() = %s, want DEAD_END", got)
	}
}

func TestTraverseShortCycle(t *testing.T) {
	// ProofSize/2 independent 2-edge rings: (0,1) share both endpoints, and so do
	// every other disjoint pair. Every node has even degree, so it passes
	// the xor check that guards traverse, but the ring containing the
	// start returns to 0 long before all ProofSize edges are visited.
	var uvs [2 * ProofSize]uint64
	for k := 0; k < ProofSize; k += 2 {
		u := uint64(k + 1)
		v := uint64(k + 2)
		uvs[2*k] = u
		uvs[2*k+1] = v
		uvs[2*(k+1)] = u
		uvs[2*(k+1)+1] = v
	}

	if got := traverse(uvs); got != ShortCycle {
		t.Fatalf("traverse() = %s, want SHORT_CYCLE", got)
	}
}

func TestVerifyTooBig(t *testing.T) {
	var nonces [ProofSize]uint32
	for i := range nonces {
		nonces[i] = uint32(i)
	}
	nonces[ProofSize-1] = 1 << 20

	var key [32]byte
	if got := Verify(nonces, key, 8); got != TooBig {
		t.Fatalf("Verify() = %s, want TOO_BIG", got)
	}
}

func TestVerifyTooSmall(t *testing.T) {
	var nonces [ProofSize]uint32
	for i := range nonces {
		nonces[i] = uint32(i)
	}
	nonces[5] = nonces[4]

	var key [32]byte
	if got := Verify(nonces, key, 28); got != TooSmall {
		t.Fatalf("Verify() = %s, want TOO_SMALL", got)
	}
}

func TestVerifyNonMatching(t *testing.T) {
	// An arbitrary strictly ascending, in-range nonce set is not a cycle:
	// with overwhelming probability its endpoints don't xor to zero, so it
	// is rejected long before the traversal step even runs.
	var nonces [ProofSize]uint32
	for i := range nonces {
		nonces[i] = uint32(i + 1)
	}

	var key [32]byte
	key[0] = 0x42
	if got := Verify(nonces, key, 28); got != NonMatching {
		t.Fatalf("Verify() = %s, want NON_MATCHING", got)
	}
}

func TestNodePartitionBit(t *testing.T) {
	keys := SetKeys(make([]byte, 16))
	edgemask := uint64(1)<<20 - 1

	u := node(keys, 7, 0, edgemask)
	v := node(keys, 7, 1, edgemask)

	if u&1 != 0 {
		t.Fatalf("U endpoint low bit = %d, want 0", u&1)
	}
	if v&1 != 1 {
		t.Fatalf("V endpoint low bit = %d, want 1", v&1)
	}
}
