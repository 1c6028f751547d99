// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package cuckoo

import "testing"

func TestSetKeysLittleEndian(t *testing.T) {
	buf := make([]byte, 16)
	buf[0] = 0x01 // k0 = 1
	buf[8] = 0x02 // k1 = 2

	keys := SetKeys(buf)
	if keys.k0 != 1 {
		t.Errorf("k0 = %d, want 1", keys.k0)
	}
	if keys.k1 != 2 {
		t.Errorf("k1 = %d, want 2", keys.k1)
	}
}

func TestSetKeysIgnoresTrailingBytes(t *testing.T) {
	short := SetKeys(make([]byte, 16))
	long := SetKeys(make([]byte, 32))
	if short != long {
		t.Error("SetKeys output depends on bytes beyond the first 16")
	}
}

func TestSiphash24Deterministic(t *testing.T) {
	keys := SetKeys([]byte("0123456789abcdef"))

	a := siphash24(keys, 42)
	b := siphash24(keys, 42)
	if a != b {
		t.Errorf("siphash24 is not deterministic: %d != %d", a, b)
	}
}

func TestSiphash24VariesWithNonce(t *testing.T) {
	keys := SetKeys([]byte("0123456789abcdef"))

	seen := make(map[uint64]uint64, 16)
	for nonce := uint64(0); nonce < 16; nonce++ {
		out := siphash24(keys, nonce)
		if prev, ok := seen[out]; ok {
			t.Errorf("siphash24(%d) and siphash24(%d) collided on %d", prev, nonce, out)
		}
		seen[out] = nonce
	}
}

func TestSiphash24VariesWithKey(t *testing.T) {
	a := siphash24(SetKeys([]byte("0123456789abcdef")), 7)
	b := siphash24(SetKeys([]byte("fedcba9876543210")), 7)
	if a == b {
		t.Error("siphash24 produced the same output under two different keys")
	}
}
