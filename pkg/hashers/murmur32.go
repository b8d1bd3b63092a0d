package hashers

import (
	"encoding/binary"
	"math/bits"
)

const murmurBlockSize = 4

// MurmurHash3 x86 32-bit mixing constants.
const (
	murmurC1 uint32 = 0xCC9E2D51
	murmurC2 uint32 = 0x1B873593
	murmurR1        = 15
	murmurR2        = 13
	murmurM  uint32 = 5
	murmurN  uint32 = 0xE6546B64
)

type murmur32 struct {
	name     string
	hash     uint32
	numBytes int
}

// NewMurmur32 creates a MurmurHash3 x86 32-bit chunk hasher (seed 0) over
// 4-byte blocks. The 32-bit result is zero-extended to 64 bits.
func NewMurmur32() *murmur32 {
	return &murmur32{name: string(Murmur32)}
}

func (m *murmur32) BlockSize() int {
	return murmurBlockSize
}

func (m *murmur32) Consume(block []byte) {
	k := binary.LittleEndian.Uint32(block)

	k *= murmurC1
	k = bits.RotateLeft32(k, murmurR1)
	k *= murmurC2

	m.hash ^= k
	m.hash = bits.RotateLeft32(m.hash, murmurR2)
	m.hash = m.hash*murmurM + murmurN

	m.numBytes += murmurBlockSize
}

// Digest works on copies of the accumulated state, so taking an
// intermediate digest and continuing to write stays valid.
func (m *murmur32) Digest(tail []byte) uint64 {
	hash := m.hash
	numBytes := m.numBytes

	if len(tail) > 0 {
		var buf [murmurBlockSize]byte
		copy(buf[:], tail)
		k := binary.LittleEndian.Uint32(buf[:])

		// The tail word skips the between-blocks rotate-and-scramble step,
		// matching the reference algorithm's tail handling.
		k *= murmurC1
		k = bits.RotateLeft32(k, murmurR1)
		k *= murmurC2

		hash ^= k
		numBytes += len(tail)
	}

	hash ^= uint32(numBytes)

	hash ^= hash >> 16
	hash *= 0x85EBCA6B
	hash ^= hash >> 13
	hash *= 0xC2B2AE35
	hash ^= hash >> 16

	return uint64(hash)
}

func (m *murmur32) Name() string {
	return m.name
}
