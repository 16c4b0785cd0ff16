package service

import (
	"errors"

	"socialbook/internal/models"
)

// asUnknownReference rewrites a not-found lookup into an UNKNOWN_REFERENCE
// error. Mutations that name another record report the dangling reference
// rather than a generic not-found.
func asUnknownReference(err error, resource string, id uint) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
		return models.NewUnknownReferenceError(resource, id)
	}
	return err
}
