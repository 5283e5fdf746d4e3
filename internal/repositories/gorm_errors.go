package repositories

import (
	"errors"

	"gorm.io/gorm"

	"katalog/internal/models"
)

// translateWriteError maps GORM write failures onto the domain error kinds.
// The caller supplies the resource name and the conflict message used when
// a uniqueness constraint fired. Requires gorm.Config{TranslateError: true}
// so driver-specific violations arrive as gorm sentinel errors.
func translateWriteError(err error, resource, conflictMsg, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewConflictError(resource, conflictMsg)
	}
	return models.NewStorageError(op, err)
}
