package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError is a user-facing error bound to a request field. Handlers
// translate it into a 400 response; raw storage errors never reach clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
