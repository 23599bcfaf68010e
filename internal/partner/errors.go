package partner

import (
	"errors"
	"fmt"
)

// ErrCircuitOpen is returned (wrapped in a TransportError) when the outbound
// circuit breaker refuses the call before it is attempted.
var ErrCircuitOpen = errors.New("partner circuit breaker is open")

// TransportError covers connection and timeout failures. The request may
// never have reached the partner; retrying with a fresh idempotency key is
// safe.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("partner transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// AuthError means the partner rejected our credentials. Not retryable
// without re-authentication.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("partner authentication failed (%d)", e.StatusCode)
}

// PartnerError is a non-success response from the partner gateway. The
// status and raw body are carried verbatim so operators can distinguish
// "partner down" from "bad request shape" from "consent expired". The client
// never substitutes data for one of these.
type PartnerError struct {
	StatusCode int
	Body       string
	Call       string
}

func (e *PartnerError) Error() string {
	return fmt.Sprintf("partner %s call failed (%d): %s", e.Call, e.StatusCode, e.Body)
}

// Retryable reports whether the failure class permits a retry. Only 5xx
// responses qualify; 4xx responses are surfaced verbatim.
func (e *PartnerError) Retryable() bool {
	return e.StatusCode >= 500
}

// NotFoundError marks an account that could not be confirmed in the
// accounts-list response. It is used by FX account verification, not by
// balance enrichment, which degrades per-account instead.
type NotFoundError struct {
	AccountID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.AccountID)
}

// IsRetryable reports whether err permits a retry with a fresh idempotency
// key: transport failures always, partner failures only for 5xx.
func IsRetryable(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	var partnerErr *PartnerError
	if errors.As(err, &partnerErr) {
		return partnerErr.Retryable()
	}

	return false
}
