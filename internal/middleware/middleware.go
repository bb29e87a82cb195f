// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"encoding/json"
	"net/http"
)

// contextKey is a private type for context keys defined in this package.
type contextKey string

// respondError writes a structured JSON error. Middleware cannot use
// the handler package's helpers (handler imports middleware for GetLogger),
// so it carries its own minimal version.
func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
