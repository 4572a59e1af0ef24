// Package httputil maps errors to JSON error responses for gin handlers.
package httputil

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/validacpf/internal/errors"
)

// StatusClientClosedRequest is the non-standard status recorded when the client
// goes away before the response is ready.
const StatusClientClosedRequest = 499

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON error body.
// Use cases wrap the sentinels from the errors package, so matching goes
// through apperrors.Is and sees the whole chain. Unknown errors become 500
// without exposing their details; only the log line carries the cause.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	// Checked first: a cancelled query also carries ErrUnavailable.
	case apperrors.Is(err, context.Canceled):
		statusCode = StatusClientClosedRequest
		errorResponse = ErrorResponse{
			Error:   "client_closed_request",
			Message: "The request was cancelled by the client",
		}

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	// The message is safe to echo: invalid input errors are built from
	// validation rules, never from driver output.
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		errorResponse = ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnavailable):
		statusCode = http.StatusServiceUnavailable
		errorResponse = ErrorResponse{
			Error:   "service_unavailable",
			Message: "A required service is temporarily unavailable",
		}

	default:
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 response carrying message. The underlying
// err is only logged so that decoder internals never reach the client.
func HandleBadRequestGin(c *gin.Context, err error, message string, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}
