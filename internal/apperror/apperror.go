// Package apperror defines the error taxonomy shared by the store and HTTP
// layers. Every failure that crosses a package boundary carries a Code so
// handlers can map it to a status without inspecting error text.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation   Code = "validation"
	CodeConflict     Code = "conflict"
	CodeForeignKey   Code = "foreign_key"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetCode extracts the Code from err, defaulting to CodeInternal for
// anything that is not an *Error (driver failures, context errors, ...).
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// HTTPStatus maps a Code to its response status. Validation, conflict and
// foreign-key failures are all client errors on this API's contract.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeConflict, CodeForeignKey:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
