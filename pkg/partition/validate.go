package partition

import (
	stderrors "errors"

	"github.com/iamNilotpal/bufhash/pkg/errors"
	"github.com/iamNilotpal/bufhash/pkg/hasher"
)

func validate(h hasher.ChunkHasher) error {
	if h == nil {
		return errors.NewValidationError(
			"hasher", nil, stderrors.New("chunk hasher must not be nil"),
		)
	}

	if size := h.BlockSize(); size < 1 {
		return errors.NewValidationError(
			"blockSize", size, stderrors.New("block size must be at least 1 byte"),
		)
	}

	return nil
}
