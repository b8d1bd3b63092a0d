package hashers

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/murmur3"

	"github.com/iamNilotpal/bufhash/pkg/errors"
	"github.com/iamNilotpal/bufhash/pkg/hasher"
)

// feed runs a chunk hasher over data by hand: full blocks through Consume,
// the remainder through Digest. The buffering layer has its own tests; here
// the algorithms themselves are on trial.
func feed(h hasher.ChunkHasher, data []byte) uint64 {
	size := h.BlockSize()
	for len(data) >= size {
		h.Consume(data[:size])
		data = data[size:]
	}
	return h.Digest(data)
}

func TestAdditive64(t *testing.T) {
	h := NewAdditive64()
	assert.Equal(t, 8, h.BlockSize())
	assert.Equal(t, string(Additive64), h.Name())

	assert.Equal(t, uint64(0xE4058DED8D8CA900), feed(NewAdditive64(), []byte("Hello, world!")))

	// One full word plus a 3-byte tail: the digest is the word shifted by
	// the tail length, with the tail bytes themselves left out.
	word := binary.LittleEndian.Uint64([]byte("abcdefgh"))
	assert.Equal(t, word<<3, feed(NewAdditive64(), []byte("abcdefghijk")))

	assert.Equal(t, uint64(0), feed(NewAdditive64(), nil))
}

func TestMurmur32KnownVectors(t *testing.T) {
	h := NewMurmur32()
	assert.Equal(t, 4, h.BlockSize())
	assert.Equal(t, string(Murmur32), h.Name())

	assert.Equal(t, uint64(0xC0363E43), feed(NewMurmur32(), []byte("Hello, world!")))
	assert.Equal(t, uint64(0), feed(NewMurmur32(), nil))
}

func TestMurmur32MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(130))
		rng.Read(data)

		want := uint64(murmur3.Sum32(data))
		assert.Equal(t, want, feed(NewMurmur32(), data), "input length %d", len(data))
	}
}

func TestMurmur32DigestIsRepeatable(t *testing.T) {
	h := NewMurmur32()
	h.Consume([]byte("abcd"))

	tail := []byte("xy")
	first := h.Digest(tail)
	assert.Equal(t, first, h.Digest(tail))

	// State is untouched by Digest: continuing to consume behaves as if
	// the intermediate digest never happened.
	h.Consume([]byte("efgh"))
	assert.Equal(t, feed(mustConsume(NewMurmur32(), "abcd", "efgh"), tail), h.Digest(tail))
}

func mustConsume(h hasher.ChunkHasher, blocks ...string) hasher.ChunkHasher {
	for _, b := range blocks {
		h.Consume([]byte(b))
	}
	return h
}

func TestFNV64aMatchesStdlib(t *testing.T) {
	h := NewFNV64a()
	assert.Equal(t, 1, h.BlockSize())
	assert.Equal(t, string(FNV64a), h.Name())

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		data := make([]byte, rng.Intn(100))
		rng.Read(data)

		ref := fnv.New64a()
		ref.Write(data)

		assert.Equal(t, ref.Sum64(), feed(NewFNV64a(), data))
	}
}

func TestFactoryDefaults(t *testing.T) {
	h, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, h.BlockSize())

	h, err = New(&hasher.Options{Algorithm: Additive64})
	require.NoError(t, err)
	assert.Equal(t, 8, h.BlockSize())
}

func TestFactoryUnknownAlgorithm(t *testing.T) {
	h, err := New(&hasher.Options{Algorithm: "md5"})
	assert.Nil(t, h)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFactoryCustomPrecedence(t *testing.T) {
	custom := NewAdditive64()

	// A custom hasher wins over the algorithm name, and skips name
	// validation entirely.
	h, err := New(&hasher.Options{Algorithm: "nonsense", Custom: custom})
	require.NoError(t, err)
	assert.Same(t, custom, h.(*additive64))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
	assert.NoError(t, Validate(&hasher.Options{Algorithm: FNV64a}))
	assert.NoError(t, Validate(&hasher.Options{Algorithm: "whatever", Custom: NewFNV64a()}))
	assert.Error(t, Validate(&hasher.Options{Algorithm: "whatever"}))
}
