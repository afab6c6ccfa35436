package store

import (
	"errors"

	"NGO_Platform/internal/model"
)

var (
	ErrEmailTaken        = errors.New("User already exists with this email")
	ErrInvalidTransition = errors.New("Application status cannot change once approved or rejected")
	ErrInvalidStatus     = errors.New("Invalid application status")
	ErrInvalidEmail      = errors.New("Invalid email")
)

// NotFoundError is returned for a missing record; it is an expected outcome, not a fault.
type NotFoundError struct {
	Kind model.Kind
}

func (e *NotFoundError) Error() string {
	return e.Kind.Label() + " not found"
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
