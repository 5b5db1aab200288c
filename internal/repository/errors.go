package repository

import (
	"errors"

	apperrors "clubhub/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// storeError classifies a driver error from a write.
// Unacknowledged writes and other driver failures both surface as server errors.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return apperrors.ErrWriteNotAcknowledged.Wrap(err)
	}
	return err
}
