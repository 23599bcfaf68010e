package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountNotLinked     ErrorCode = "ACCOUNT_002"
	AccountInvalidID     ErrorCode = "ACCOUNT_003"
	AccountListFailed    ErrorCode = "ACCOUNT_004"
	AccountBalanceFailed ErrorCode = "ACCOUNT_005"
)

// Consent error codes (CONSENT_*)
const (
	ConsentNotFound       ErrorCode = "CONSENT_001"
	ConsentExpired        ErrorCode = "CONSENT_002"
	ConsentRejected       ErrorCode = "CONSENT_003"
	ConsentCreationFailed ErrorCode = "CONSENT_004"
)

// Payment error codes (PAYMENT_*)
const (
	PaymentNotFound         ErrorCode = "PAYMENT_001"
	PaymentInvalidAmount    ErrorCode = "PAYMENT_002"
	PaymentConsentRequired  ErrorCode = "PAYMENT_003"
	PaymentInitiationFailed ErrorCode = "PAYMENT_004"
)

// Foreign exchange error codes (FX_*)
const (
	FXRatesUnavailable ErrorCode = "FX_001"
	FXQuoteFailed      ErrorCode = "FX_002"
	FXInvalidCurrency  ErrorCode = "FX_003"
	FXNoRatesReturned  ErrorCode = "FX_004"
)

// Partner gateway error codes (PARTNER_*)
const (
	PartnerRequestFailed ErrorCode = "PARTNER_001"
	PartnerAuthFailed    ErrorCode = "PARTNER_002"
	PartnerUnreachable   ErrorCode = "PARTNER_003"
	PartnerBadResponse   ErrorCode = "PARTNER_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid credentials",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Account errors
	AccountNotFound:      "Account not found",
	AccountNotLinked:     "Account is not linked to this profile",
	AccountInvalidID:     "Invalid account ID format",
	AccountListFailed:    "Failed to retrieve accounts from the partner gateway",
	AccountBalanceFailed: "Failed to retrieve balances from the partner gateway",

	// Consent errors
	ConsentNotFound:       "Consent not found",
	ConsentExpired:        "Consent has expired",
	ConsentRejected:       "Consent was rejected",
	ConsentCreationFailed: "Failed to create account access consent",

	// Payment errors
	PaymentNotFound:         "Payment not found",
	PaymentInvalidAmount:    "Invalid payment amount",
	PaymentConsentRequired:  "A payment consent ID is required",
	PaymentInitiationFailed: "Failed to initiate payment",

	// FX errors
	FXRatesUnavailable: "Foreign exchange rates are currently unavailable",
	FXQuoteFailed:      "Failed to obtain a foreign exchange quote",
	FXInvalidCurrency:  "Invalid or unsupported currency code",
	FXNoRatesReturned:  "Partner gateway returned no exchange rates",

	// Partner errors
	PartnerRequestFailed: "Partner gateway rejected the request",
	PartnerAuthFailed:    "Partner gateway authentication failed",
	PartnerUnreachable:   "Partner gateway is unreachable",
	PartnerBadResponse:   "Partner gateway returned an unexpected response",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
