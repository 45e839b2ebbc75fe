package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/pkg/helpers"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not allowed")
	ErrInternal           = errors.New("internal error")
)

// invalid tags a validator error with ErrValidation while keeping the
// violation list reachable through errors.As.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// internal logs the cause and hides it from callers.
func internal(logger *logrus.Logger, msg string, err error, fields logrus.Fields) error {
	helpers.LogError(logger, msg, err, fields)
	return ErrInternal
}
