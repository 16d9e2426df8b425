package models

import (
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "InternalError"
	KindValidation ErrorKind = "ValidationError"
)

// APIError is the only error type handlers surface to clients.
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to its HTTP status.
func (e *APIError) StatusCode() int {
	if e.Kind == KindValidation {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func NewValidationError(err error) *APIError {
	return &APIError{Kind: KindValidation, Message: err.Error(), Err: err}
}

func NewValidationErrorf(format string, args ...interface{}) *APIError {
	return NewValidationError(fmt.Errorf(format, args...))
}

func NewInternalError(err error) *APIError {
	return &APIError{Kind: KindInternal, Message: err.Error(), Err: err}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
