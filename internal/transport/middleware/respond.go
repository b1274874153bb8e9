package middleware

import (
	"encoding/json"
	"net/http"
)

// writeMessage writes the {"message": ...} error body used by every endpoint.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message}) //nolint:errcheck
}
