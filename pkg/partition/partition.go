// Package partition adapts block-structured hashing algorithms to
// incremental, arbitrarily chunked byte streams.
//
// A chunk hasher only knows how to fold exact-size blocks into its state.
// The Hasher in this package sits in front of one and does the accounting:
// it accepts writes of any length, in any number of calls, feeds the hasher
// complete blocks in stream order, and carries leftover bytes across calls
// until more data arrives or the digest is taken. The resulting digest
// depends only on the concatenated stream, never on how it was split
// across Write calls.
package partition

import (
	"github.com/iamNilotpal/bufhash/pkg/hasher"
)

// Hasher buffers an incremental byte stream into fixed-size blocks for a
// chunk hasher. Not safe for concurrent use; use one instance per logical
// stream or serialize access externally.
type Hasher struct {
	hasher    hasher.ChunkHasher // The block-structured algorithm being driven.
	blockSize int                // Cached hasher.BlockSize(), constant after construction.

	// Bytes received but not yet forming a complete block. Always shorter
	// than one block between calls: a full carry is flushed to the chunk
	// hasher within the same Write call that filled it. The backing array
	// is reused across flushes, so a Hasher allocates only at construction.
	carry []byte
}

// New creates a partitioned hasher driving h, which must be in its initial
// state. The Hasher takes ownership of h; callers must not touch it again.
func New(h hasher.ChunkHasher) (*Hasher, error) {
	if err := validate(h); err != nil {
		return nil, err
	}

	size := h.BlockSize()
	return &Hasher{
		hasher:    h,
		blockSize: size,
		carry:     make([]byte, 0, size),
	}, nil
}

// Write feeds the next slice of the logical stream to the hasher. The slice
// may be of any length, including empty; p is not retained after the call
// returns.
func (p *Hasher) Write(data []byte) {
	// Top up a pending carry before anything else: its bytes arrived
	// earlier in the stream, so they must reach the chunk hasher first.
	if len(p.carry) > 0 {
		needed := p.blockSize - len(p.carry)
		borrowed := min(needed, len(data))
		p.carry = append(p.carry, data[:borrowed]...)

		// Not enough incoming bytes to complete the block; everything has
		// been absorbed into the carry and there is nothing to flush.
		if len(p.carry) < p.blockSize {
			return
		}

		p.hasher.Consume(p.carry)
		p.carry = p.carry[:0]
		data = data[borrowed:]
	}

	for len(data) >= p.blockSize {
		p.hasher.Consume(data[:p.blockSize])
		data = data[p.blockSize:]
	}

	if len(data) > 0 {
		p.carry = append(p.carry, data...)
	}
}

// Sum64 returns the digest of the stream written so far, folding in the
// carried tail. It does not mutate the hasher or the carry, so it may be
// called repeatedly and interleaved with further writes.
func (p *Hasher) Sum64() uint64 {
	return p.hasher.Digest(p.carry)
}

// BlockSize returns the block size of the underlying chunk hasher.
func (p *Hasher) BlockSize() int {
	return p.blockSize
}
