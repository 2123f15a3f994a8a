package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard error envelope. Raw carries the offending
// model output when a generation failure is being reported, so the caller
// can diagnose what the model actually produced.
type ErrorResponse struct {
	Error   string `json:"error"`
	Raw     string `json:"raw,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error envelope with the given status code
// and message, tagged with the request's trace ID when one is set.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondError(w, r, status, ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithGenerationError reports a model-output failure, preserving the
// raw payload in the envelope alongside the message.
func RespondWithGenerationError(w http.ResponseWriter, r *http.Request, message, raw string) {
	respondError(w, r, http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Raw:     raw,
		TraceID: GetTraceID(r.Context()),
	})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "API error response",
		slog.Int("status_code", status),
		slog.String("message", resp.Error),
		slog.String("trace_id", resp.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, resp)
}
