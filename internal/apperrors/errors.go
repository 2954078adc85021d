package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation would leave the data in an unsupported state,
// such as removing the only client.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates missing or invalid operator credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConfirmationRequired indicates a destructive operation was called without
// an explicit confirmation flag.
var ErrConfirmationRequired = errors.New("confirmation required")

// AppError carries a user-facing message alongside a classifying sentinel.
type AppError struct {
	Code    error
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
func NewAppError(code error, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is lets errors.Is match the classifying sentinel.
func (e *AppError) Is(target error) bool {
	return e.Code != nil && errors.Is(e.Code, target)
}

func (e *AppError) Unwrap() error { return e.Err }
