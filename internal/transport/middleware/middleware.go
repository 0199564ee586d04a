// Package middleware holds the HTTP middleware shared by the REST API and
// the websocket endpoint.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler. The type matches chi's Use signature.
type Middleware = func(http.Handler) http.Handler

// writeError writes the same {"error": "..."} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
