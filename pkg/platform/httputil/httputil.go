// Package httputil centralizes the JSON response envelope so every handler
// answers in the same shape:
//
//	{ "success": bool, "data"?: object, "error"?: string,
//	  "message"?: string, "timestamp": RFC3339 }
package httputil

import (
	"encoding/json"
	"net/http"
	"time"

	dErrors "regdesk/pkg/domain-errors"
)

type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// WriteData writes a success envelope carrying data.
func WriteData(w http.ResponseWriter, status int, data any) {
	write(w, status, envelope{Success: true, Data: data})
}

// WriteMessage writes a success envelope carrying only a message.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: true, Message: message})
}

// WriteError translates a domain error into the failure envelope. Internal
// errors are redacted; validation, not-found, and store errors expose their
// message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	write(w, dErrors.ToHTTPStatus(code), envelope{
		Success: false,
		Error:   dErrors.MessageOf(err),
	})
}

// Decode reads the JSON body into T. On malformed input it writes the
// validation failure envelope and returns ok=false; callers just return.
func Decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, "invalid request body"))
		var zero T
		return zero, false
	}
	return req, true
}

func write(w http.ResponseWriter, status int, env envelope) {
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
