// Package apperror defines the error taxonomy shared by services and controllers.
// Services return these typed errors; controllers translate them to HTTP status
// codes. Anything that is not a ValidationError or NotFoundError is treated as
// an internal storage failure and never leaks its cause to the caller.
package apperror

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}
