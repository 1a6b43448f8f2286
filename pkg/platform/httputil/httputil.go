// Package httputil centralizes JSON response envelopes so every handler
// emits the same shapes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "symbology/pkg/domain-errors"
)

// WriteJSON writes v with the given status. Encoding failures are swallowed;
// by that point the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the standard error envelope. Coded
// errors map to their HTTP status; anything else is treated as internal.
// Internal errors deliberately omit the description so server details never
// leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := ""
	var de *dErrors.DomainError
	if errors.As(err, &de) {
		code = de.Code
		message = de.Message
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && message != "" {
		body["error_description"] = message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}
