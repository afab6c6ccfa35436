package service

import (
	"errors"

	"NGO_Platform/internal/store"
)

// Kind classifies a failure for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "internal"
}

// Error carries a client-safe Message. Err holds the cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgNoAccount          = "No account found with this email"
	MsgInvalidEmail       = "Invalid email"
	MsgInvalidResetCode   = "Invalid reset code"
	MsgResetCodeExpired   = "Reset code has expired. Please request a new one."
	MsgInvalidToken       = "Invalid token"
	MsgInsufficientPerms  = "Insufficient permissions"
	MsgInternal           = "Internal server error"
)

var (
	ErrInvalidCredentials = newError(KindUnauthorized, MsgInvalidCredentials)
	ErrNoAccount          = newError(KindNotFound, MsgNoAccount)
	ErrInvalidEmail       = newError(KindNotFound, MsgInvalidEmail)
	ErrInvalidResetCode   = newError(KindBadRequest, MsgInvalidResetCode)
	ErrResetCodeExpired   = newError(KindBadRequest, MsgResetCodeExpired)
	ErrInvalidToken       = newError(KindForbidden, MsgInvalidToken)
	ErrForbidden          = newError(KindForbidden, MsgInsufficientPerms)
	ErrPasswordTooLong    = newError(KindBadRequest, "Password must be at most 72 bytes")
	ErrAdminSignup        = newError(KindBadRequest, "Cannot register as platform_admin")
	ErrUnknownUserType    = newError(KindBadRequest, "Invalid user type")
	ErrEmailRequired      = newError(KindBadRequest, "Email is required")
)

// Classify maps service and store errors onto a Kind and the message a client may see.
func Classify(err error) (Kind, string) {
	var se *Error
	if errors.As(err, &se) {
		if se.Kind == KindInternal {
			return KindInternal, MsgInternal
		}
		return se.Kind, se.Message
	}
	var nf *store.NotFoundError
	switch {
	case errors.As(err, &nf):
		return KindNotFound, nf.Error()
	case errors.Is(err, store.ErrEmailTaken):
		return KindConflict, store.ErrEmailTaken.Error()
	case errors.Is(err, store.ErrInvalidTransition):
		return KindConflict, store.ErrInvalidTransition.Error()
	case errors.Is(err, store.ErrInvalidStatus):
		return KindBadRequest, store.ErrInvalidStatus.Error()
	case errors.Is(err, store.ErrInvalidEmail):
		return KindBadRequest, store.ErrInvalidEmail.Error()
	}
	return KindInternal, MsgInternal
}
