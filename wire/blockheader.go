// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/cuckoonet/cuckood/chaincfg/chainhash"
)

// MaxHeaderPayload is the number of bytes in the canonical, versioned
// prefix of a block header that is covered by the header hash: version,
// previous block hash, merkle root, time, nBits and nonce. The cuckoo
// proof, when present, is appended after this prefix and is not part of it.
const MaxHeaderPayload = 4 + chainhash.HashSize + chainhash.HashSize + 4 + 4 + 4

// ProofSize is the number of nonces making up a Cuckoo Cycle proof.
const ProofSize = 42

// CuckooHardforkVersionMask is ORed into a block's version once the chain
// has activated Cuckoo Cycle proof of work. A header whose version carries
// this mask has its proof of work checked under the post-fork rules
// regardless of its height; retargeting picks the pre- or post-fork limit
// by height alone. The validation pipeline is responsible for keeping the
// two in sync.
const CuckooHardforkVersionMask = 1 << 29

// BlockHeader defines information about a block: the fields of its
// canonical 80-byte prefix plus the Cuckoo Cycle proof.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.
	Timestamp time.Time

	// Difficulty target for the block, compact ("nBits") representation.
	Bits uint32

	// Nonce used to generate the block, consumed by non-cuckoo PoW.
	Nonce uint32

	// CuckooProof is the 42-nonce Cuckoo Cycle solution. It is only
	// meaningful, and only validated, once IsCuckooPow returns true; it is
	// not part of the canonical 80-byte prefix hashed for PoW comparison.
	CuckooProof [ProofSize]uint32
}

// IsCuckooPow reports whether this header claims Cuckoo Cycle proof of work,
// as signaled by the hardfork bit in the version field.
func (h *BlockHeader) IsCuckooPow() bool {
	return uint32(h.Version)&CuckooHardforkVersionMask != 0
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := make([]byte, 0, MaxHeaderPayload)
	w := bytes.NewBuffer(buf)

	// Ignore the error returns since the only way the serialize can fail
	// is if the buffer is too small, and we have already made sure it's
	// big enough above.
	_ = writeBlockHeader(w, h)
	return chainhash.DoubleHashH(w.Bytes())
}

// Canonical80 serializes the header's 80-byte prefix: version, previous
// block hash, merkle root, time, nBits and nonce. The cuckoo proof is never
// part of this prefix, pre-fork or post.
func (h *BlockHeader) Canonical80() [MaxHeaderPayload]byte {
	var out [MaxHeaderPayload]byte
	buf := bytes.NewBuffer(out[:0])
	_ = writeBlockHeader(buf, h)
	copy(out[:], buf.Bytes())
	return out
}

// writeBlockHeader serializes a block header in the standard little-endian
// network encoding to w.
func writeBlockHeader(w io.Writer, h *BlockHeader) error {
	sec := uint32(h.Timestamp.Unix())
	fields := []interface{}{
		uint32(h.Version),
		&h.PrevBlock,
		&h.MerkleRoot,
		sec,
		h.Bits,
		h.Nonce,
	}

	for _, field := range fields {
		switch v := field.(type) {
		case uint32:
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return err
			}
		case *chainhash.Hash:
			if _, err := w.Write(v[:]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("wire: unsupported header field type %T", v)
		}
	}

	return nil
}

// Deserialize decodes a block header's canonical 80-byte prefix from r. The
// cuckoo proof, if any, is not part of this prefix and must be populated
// separately by the caller (e.g. from the rest of a block message).
func (h *BlockHeader) Deserialize(r io.Reader) error {
	var raw [MaxHeaderPayload]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return err
	}

	h.Version = int32(binary.LittleEndian.Uint32(raw[0:4]))
	copy(h.PrevBlock[:], raw[4:4+chainhash.HashSize])
	off := 4 + chainhash.HashSize
	copy(h.MerkleRoot[:], raw[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	h.Timestamp = time.Unix(int64(binary.LittleEndian.Uint32(raw[off:off+4])), 0)
	off += 4
	h.Bits = binary.LittleEndian.Uint32(raw[off : off+4])
	off += 4
	h.Nonce = binary.LittleEndian.Uint32(raw[off : off+4])

	return nil
}
