package handlers

import (
	stderrors "errors"
	"net/http"

	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/partner"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.AccountNotFound)
//    - Consent state violations: SendError(c, errors.ConsentExpired)
//
// 2. SendPartnerError - For failures of outbound partner gateway calls.
//    Maps the typed partner errors onto stable API error codes and carries
//    the upstream status and body so operators can tell "partner down" from
//    "bad request shape". The fallback code names the operation that failed.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
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
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendPartnerError maps a failed partner gateway call to an API error
// response. The fallback code is used for a non-success partner response so
// each operation keeps its own error code; transport, auth, circuit breaker
// and not-found failures map the same way everywhere.
func SendPartnerError(c echo.Context, err error, fallback errors.ErrorCode) error {
	if stderrors.Is(err, partner.ErrCircuitOpen) {
		return SendError(c, errors.SystemServiceUnavailable,
			errors.WithDetails("Partner gateway calls are suspended after repeated failures"))
	}

	var notFoundErr *partner.NotFoundError
	if stderrors.As(err, &notFoundErr) {
		return SendError(c, errors.AccountNotFound,
			errors.WithDetails("Account "+notFoundErr.AccountID+" is not linked to this profile"))
	}

	var authErr *partner.AuthError
	if stderrors.As(err, &authErr) {
		return SendError(c, errors.PartnerAuthFailed, errors.WithUpstream(authErr.StatusCode, ""))
	}

	var transportErr *partner.TransportError
	if stderrors.As(err, &transportErr) {
		return SendError(c, errors.PartnerUnreachable)
	}

	var partnerErr *partner.PartnerError
	if stderrors.As(err, &partnerErr) {
		return SendError(c, fallback, errors.WithUpstream(partnerErr.StatusCode, partnerErr.Body))
	}

	return SendSystemError(c, err)
}
