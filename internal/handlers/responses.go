package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/validation"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through SendError (4xx and informational
// codes), SendValidationError (validator failures) or SendSystemError (500).
// Do not return echo.NewHTTPError or write error bodies with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError reports the failed fields of a validator error. Errors
// without field information become a generic VALIDATION_001.
func SendValidationError(c echo.Context, err error) error {
	fieldErrors := validation.FieldErrors(err)
	if len(fieldErrors) == 0 {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return c.JSON(http.StatusBadRequest, errors.NewValidationError(fieldErrors, getTraceID(c)))
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	slog.ErrorContext(c.Request().Context(), "request failed",
		"error", err,
		"path", c.Path(),
		"trace_id", errorResponse.Error.TraceID,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
