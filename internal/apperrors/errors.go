// Package apperrors defines the failure taxonomy shared by the domain
// services. Each public service operation classifies its failures here; the
// HTTP layer maps the classes onto status codes and leaves everything else
// as an internal error.
package apperrors

import "errors"

// ErrTooManyRequests is returned when the submission throttle trips.
var ErrTooManyRequests = errors.New("too many submissions, please try again later")

// ValidationError marks client input that is missing, oversized or outside
// an enumerated set.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a ValidationError with the given message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError marks a referenced entity id that does not resolve.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NewNotFound builds a NotFoundError for the named resource.
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ForbiddenError marks a caller that lacks rights over a specific entity.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// NewForbidden builds a ForbiddenError, defaulting to "Access denied".
func NewForbidden(message string) error {
	if message == "" {
		message = "Access denied"
	}
	return &ForbiddenError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}
