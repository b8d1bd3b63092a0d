package hashers

import (
	"encoding/binary"
)

const additiveBlockSize = 8

type additive64 struct {
	name string
	sum  uint64
}

// NewAdditive64 creates a chunk hasher that interprets the stream as
// little-endian 64-bit words and adds them together, wrapping on overflow.
// The digest is the running sum shifted left by the tail length; tail bytes
// themselves are not folded in. Not a good hash — its value is that every
// intermediate state is trivial to compute by hand.
func NewAdditive64() *additive64 {
	return &additive64{name: string(Additive64)}
}

func (a *additive64) BlockSize() int {
	return additiveBlockSize
}

func (a *additive64) Consume(block []byte) {
	a.sum += binary.LittleEndian.Uint64(block)
}

func (a *additive64) Digest(tail []byte) uint64 {
	return a.sum << len(tail)
}

func (a *additive64) Name() string {
	return a.name
}
