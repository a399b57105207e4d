package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phrazzld/signup-api/internal/domain"
)

// HTTPResponse is the transport-neutral result of a handler: a status code and
// the value to serialize as the body. A body that is an error is rendered as an
// ErrorResponse; anything else is encoded as-is.
type HTTPResponse struct {
	StatusCode int
	Body       any
}

// BadRequest wraps a client-input error in a 400 response.
func BadRequest(err error) HTTPResponse {
	return HTTPResponse{
		StatusCode: http.StatusBadRequest,
		Body:       err,
	}
}

// Created wraps a success payload in a 201 response.
func Created(body any) HTTPResponse {
	return HTTPResponse{
		StatusCode: http.StatusCreated,
		Body:       body,
	}
}

// ServerError returns a 500 response. The body is always the generic
// domain.ServerError, whatever caused the failure.
func ServerError() HTTPResponse {
	return HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       domain.NewServerError(),
	}
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// WriteHTTPResponse renders resp onto w.
func WriteHTTPResponse(w http.ResponseWriter, r *http.Request, resp HTTPResponse) {
	if err, ok := resp.Body.(error); ok {
		RespondWithError(w, r, resp.StatusCode, err.Error())
		return
	}
	RespondWithJSON(w, r, resp.StatusCode, resp.Body)
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errorResponse)
}
