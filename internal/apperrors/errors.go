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

// ErrConflict indicates that the operation is not allowed in the resource's current state.
var ErrConflict = errors.New("conflict with current state")

// ErrUnprocessable indicates amounts that do not agree with the referenced document.
var ErrUnprocessable = errors.New("unprocessable request")

// ErrInternal indicates an unexpected failure inside the service.
var ErrInternal = errors.New("internal error")

// ErrUnauthorized indicates a missing or invalid identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code together with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
