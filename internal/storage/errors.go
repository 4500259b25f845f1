package storage

import (
	"errors"

	"github.com/mmynk/pointwallet/internal/apperrors"
)

// Wrap classifies a store error for the manager operation op.
func Wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return apperrors.NotFound(op, "%v", err)
	case errors.Is(err, ErrConflict):
		return apperrors.AlreadyHandled(op, "%v", err)
	default:
		return apperrors.Wrap(op, err)
	}
}
