// Package httpx holds the JSON response helpers used by every handler.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/ayush/org-chart-api/internal/apperror"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// Error writes the {"error": msg} envelope the API uses for every failure.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

// AppError maps err through the apperror taxonomy. Anything without a code
// is reported as a generic datastore failure so internal detail never
// reaches the caller.
func AppError(w http.ResponseWriter, err error) {
	code := apperror.GetCode(err)
	status := apperror.HTTPStatus(code)

	msg := "database error"
	if code != apperror.CodeInternal {
		msg = err.Error()
	}
	Error(w, status, msg)
}
