// Package apperr provides structured errors for collaborator failures.
// Store operations never surface these to callers directly; they fold the
// message into the relevant slice's error field.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies the failure class.
type Code string

const (
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeStorage            Code = "STORAGE_ERROR"
	CodeExternal           Code = "EXTERNAL_SERVICE_ERROR"
	CodeInternal           Code = "INTERNAL_ERROR"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func InvalidCredentials() *Error {
	return New(CodeInvalidCredentials, "Invalid credentials")
}

func InvalidToken(cause error) *Error {
	return Wrap(CodeInvalidToken, "Invalid auth token", cause)
}

func AlreadyExists(resource string) *Error {
	return New(CodeAlreadyExists, fmt.Sprintf("%s already exists", resource))
}

func Storage(op string, cause error) *Error {
	return Wrap(CodeStorage, fmt.Sprintf("storage %s failed", op), cause)
}

func External(service string, cause error) *Error {
	return Wrap(CodeExternal, fmt.Sprintf("%s request failed", service), cause)
}

// Message extracts a user-presentable message from any error.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
