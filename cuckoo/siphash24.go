// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import "encoding/binary"

// sipConst0 through sipConst3 are the canonical SipHash-2-4 initialization
// constants.
const (
	sipConst0 = 0x736f6d6570736575
	sipConst1 = 0x646f72616e646f6d
	sipConst2 = 0x6c7967656e657261
	sipConst3 = 0x7465646279746573
)

// Keys holds the two 64-bit words a SipHash-2-4 key expands to.
type Keys struct {
	k0, k1 uint64
}

// SetKeys interprets buf as two little-endian 64-bit words and returns the
// resulting SipHash-2-4 keys. Only the first 16 bytes of buf are consumed.
func SetKeys(buf []byte) Keys {
	return Keys{
		k0: binary.LittleEndian.Uint64(buf[0:8]),
		k1: binary.LittleEndian.Uint64(buf[8:16]),
	}
}

// sipHash24 is an implementation of the siphash 2-4 keyed hash function by
// Jean-Philippe Aumasson and Daniel J. Bernstein.
type sipHash24 struct {
	// v is the current internal state.
	v [4]uint64
}

// newSipHash24 returns a new instance of a sipHash24 hasher seeded from keys.
func newSipHash24(keys Keys) sipHash24 {
	return sipHash24{
		v: [4]uint64{
			keys.k0 ^ sipConst0,
			keys.k1 ^ sipConst1,
			keys.k0 ^ sipConst2,
			keys.k1 ^ sipConst3,
		},
	}
}

// sum64 outputs the final 64-bit digest.
func (h *sipHash24) sum64() uint64 {
	return (h.v[0] ^ h.v[1]) ^ (h.v[2] ^ h.v[3])
}

// write64 computes two compression rounds, then four finalization rounds,
// over the 8-byte little-endian input word.
func (h *sipHash24) write64(word uint64) {
	round := func() {
		h.v[0] += h.v[1]
		h.v[1] = h.v[1]<<13 | h.v[1]>>(64-13)
		h.v[1] ^= h.v[0]
		h.v[0] = h.v[0]<<32 | h.v[0]>>(64-32)

		h.v[2] += h.v[3]
		h.v[3] = h.v[3]<<16 | h.v[3]>>(64-16)
		h.v[3] ^= h.v[2]

		h.v[0] += h.v[3]
		h.v[3] = h.v[3]<<21 | h.v[3]>>(64-21)
		h.v[3] ^= h.v[0]

		h.v[2] += h.v[1]
		h.v[1] = h.v[1]<<17 | h.v[1]>>(64-17)
		h.v[1] ^= h.v[2]
		h.v[2] = h.v[2]<<32 | h.v[2]>>(64-32)
	}

	h.v[3] ^= word
	round()
	round()
	h.v[0] ^= word

	h.v[2] ^= 0xff
	round()
	round()
	round()
	round()
}

// siphash24 computes a single SipHash-2-4 digest of nonce under keys.
func siphash24(keys Keys, nonce uint64) uint64 {
	h := newSipHash24(keys)
	h.write64(nonce)
	return h.sum64()
}
