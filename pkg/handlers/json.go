// Package handlers contains HTTP handlers for Harmony Guide. This file groups
// the small helpers used to write JSON responses with a consistent envelope.
package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondJSONError writes a JSON error envelope. The message must already be
// user-safe; callers log any internal detail before reaching here.
func respondJSONError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
