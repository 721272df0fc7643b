package services

import (
	"errors"

	"gorm.io/gorm"
)

// ErrorKind classifies service failures for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindAuthorization
	KindNotFound
	KindConflict
	KindState
)

func (kind ErrorKind) String() string {
	switch kind {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindState:
		return "state"
	default:
		return "internal"
	}
}

// Error is a classified failure whose Message is safe to show to clients.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (err *Error) Error() string {
	if err.Err != nil {
		return err.Message + ": " + err.Err.Error()
	}
	return err.Message
}

func (err *Error) Unwrap() error {
	return err.Err
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrEmailRequired        = newError(KindValidation, "email is required")
	ErrPasswordRequired     = newError(KindValidation, "password is required")
	ErrInvalidEmail         = newError(KindValidation, "email is not a valid address")
	ErrPasswordTooLong      = newError(KindValidation, "password must be at most 72 bytes")
	ErrSuperUserMustBeAdmin = newError(KindValidation, "superuser must have admin=true")
	ErrEmailTaken           = newError(KindConflict, "a user with this email already exists")

	ErrInvalidCredentials = newError(KindAuth, "Access denied: wrong username or password.")
	ErrInactiveAccount    = newError(KindAuth, "account is inactive")

	ErrNotOrganizationOwner = newError(KindAuthorization, "only the organization itself can do this")
	ErrForbidden            = newError(KindAuthorization, "forbidden")

	ErrUserNotFound         = newError(KindNotFound, "user not found")
	ErrOrganizationNotFound = newError(KindNotFound, "organization not found")

	ErrAlreadyCheckedOut  = newError(KindConflict, "exit time already registered today")
	ErrCheckInContention  = newError(KindState, "check-in could not be completed, try again")
	ErrUserEmailRequired  = newError(KindValidation, "user email is required")
	ErrPeriodRequired     = newError(KindValidation, "year and month are required")
	ErrInvalidPeriod      = newError(KindValidation, "year must be 1..9999 and month 1..12")
	ErrInvalidDate        = newError(KindValidation, "date must use YYYY-MM-DD")
	ErrInvalidOrgName     = newError(KindValidation, "organization name is required")
	ErrInvalidShiftName   = newError(KindValidation, "shift name is required")
	ErrInvalidShiftTime   = newError(KindValidation, "shift times must use HH:MM")
	ErrQRCodeEncodeFailed = newError(KindInternal, "qr code could not be generated")
)

// KindOf returns the kind of the first classified error in the chain.
func KindOf(err error) ErrorKind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of a classified error.
func MessageOf(err error) string {
	var classified *Error
	if errors.As(err, &classified) && classified.Kind != KindInternal {
		return classified.Message
	}
	return "internal error"
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
