package services

import (
	"errors"

	"movieapi/internal/validation"
)

// Error kinds returned by the services. Callers match them with errors.Is.
var (
	ErrValidation         = validation.ErrInvalid
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("permission denied")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
