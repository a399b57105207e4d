package domain

import "errors"

// ErrValidation is the root of every client-input error. MissingParamError and
// InvalidParamError both unwrap to it so callers can test with errors.Is.
var ErrValidation = errors.New("validation failed")

// MissingParamError is returned when a required request field is absent or empty.
type MissingParamError struct {
	Param string
}

// NewMissingParamError creates a MissingParamError for the given field name.
func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

// Error implements the error interface.
func (e *MissingParamError) Error() string {
	return "Missing param: " + e.Param
}

// Unwrap returns ErrValidation.
func (e *MissingParamError) Unwrap() error {
	return ErrValidation
}

// InvalidParamError is returned when a field is present but its value is not acceptable.
type InvalidParamError struct {
	Param string
}

// NewInvalidParamError creates an InvalidParamError for the given field name.
func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

// Error implements the error interface.
func (e *InvalidParamError) Error() string {
	return "Invalid param: " + e.Param
}

// Unwrap returns ErrValidation.
func (e *InvalidParamError) Unwrap() error {
	return ErrValidation
}

// ServerErrorMessage is the only text a client ever sees for an unexpected failure.
const ServerErrorMessage = "Internal server error"

// ServerError is the opaque error sent to clients when a collaborator fails.
// It carries no cause on purpose; the cause belongs in the logs.
type ServerError struct{}

// NewServerError creates a ServerError.
func NewServerError() *ServerError {
	return &ServerError{}
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return ServerErrorMessage
}
