// Package middleware holds the HTTP middleware installed on the router.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type errorBody struct {
	Error string `json:"error"`
}

// writeError answers with the same {"error": ...} body the rest handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message}) //nolint:errcheck
}
