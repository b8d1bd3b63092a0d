// Package hasher defines the chunk-hashing capability that partitioned
// hashing is built on. A ChunkHasher folds fixed-size blocks of a byte
// stream into internal state; the partition package takes care of slicing
// an arbitrary stream into those blocks.
package hasher

// ChunkHasher is a hashing algorithm defined over fixed-size blocks.
//
// Implementations declare their block size once, at construction; the
// partitioning layer reads the size from the instance and guarantees that
// Consume only ever sees exactly that many bytes. This is what keeps the
// block size of the algorithm and of the buffering layer from drifting
// apart: there is a single source of truth.
type ChunkHasher interface {
	// Returns the fixed block size in bytes. Must be >= 1 and must not
	// change for the lifetime of the instance.
	BlockSize() int

	// Folds one full block into the hasher's internal state.
	// The caller guarantees len(block) == BlockSize(); implementations
	// may index into block without bounds checks of their own.
	Consume(block []byte)

	// Produces the final 64-bit digest from the accumulated state and the
	// unconsumed tail of the stream. The tail is always shorter than one
	// block (0 <= len(tail) < BlockSize()).
	//
	// Digest must not mutate state: callers are allowed to take an
	// intermediate digest of a partially written stream and keep writing,
	// so repeated calls with the same tail must return the same value.
	Digest(tail []byte) uint64
}

// Algorithm identifies a built-in chunk hashing algorithm by name.
type Algorithm string

// Options selects the chunk hasher backing a partitioned hasher.
type Options struct {
	// Algorithm names one of the built-in chunk hashers.
	// Ignored when Custom is set.
	Algorithm Algorithm

	// Custom allows plugging in a user-supplied ChunkHasher implementation.
	// If provided, it takes precedence over Algorithm and no name
	// validation is performed.
	Custom ChunkHasher
}
