// Package hashers provides the built-in ChunkHasher implementations and a
// factory for constructing them by name.
package hashers

import (
	"fmt"

	"github.com/iamNilotpal/bufhash/pkg/errors"
	"github.com/iamNilotpal/bufhash/pkg/hasher"
)

const (
	// Additive64 sums little-endian 8-byte words mod 2^64 (8-byte blocks).
	// A demonstration-grade algorithm, useful as a transparent test oracle.
	Additive64 hasher.Algorithm = "additive-64"

	// Murmur32 is MurmurHash3 x86 32-bit (4-byte blocks), widened to 64 bits.
	Murmur32 hasher.Algorithm = "murmur3-32"

	// FNV64a is FNV-1a 64-bit (1-byte blocks).
	FNV64a hasher.Algorithm = "fnv-64a"
)

// Returns recommended hasher settings.
func DefaultOptions() *hasher.Options {
	return &hasher.Options{Algorithm: Murmur32}
}

func Validate(opts *hasher.Options) error {
	if opts.Custom == nil {
		switch opts.Algorithm {
		case Additive64, Murmur32, FNV64a:
		default:
			return errors.NewValidationError(
				"algorithm", opts.Algorithm,
				fmt.Errorf("unsupported hash algorithm: %s", opts.Algorithm),
			)
		}
	}
	return nil
}

// New constructs the chunk hasher selected by opts. A Custom hasher takes
// precedence over the Algorithm name; nil options select the defaults.
func New(opts *hasher.Options) (hasher.ChunkHasher, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.Custom != nil {
		return opts.Custom, nil
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	switch opts.Algorithm {
	case Additive64:
		return NewAdditive64(), nil
	case Murmur32:
		return NewMurmur32(), nil
	case FNV64a:
		return NewFNV64a(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", opts.Algorithm)
	}
}
