package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken ErrorCode = "AUTH_001"
	AuthInvalidToken ErrorCode = "AUTH_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral          ErrorCode = "VALIDATION_001"
	ValidationRequiredField    ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat    ErrorCode = "VALIDATION_003"
	ValidationInvalidDate      ErrorCode = "VALIDATION_004"
	ValidationInvalidGroupBy   ErrorCode = "VALIDATION_005"
	ValidationInvalidPaymentID ErrorCode = "VALIDATION_006"
	ValidationInvalidAmount    ErrorCode = "VALIDATION_007"
)

// Tool dispatch error codes (TOOL_*)
const (
	ToolNotFound      ErrorCode = "TOOL_001"
	ToolMalformedArgs ErrorCode = "TOOL_002"
)

// Payments ledger error codes (LEDGER_*)
const (
	LedgerRequestFailed  ErrorCode = "LEDGER_001"
	LedgerBadResponse    ErrorCode = "LEDGER_002"
	LedgerCircuitOpen    ErrorCode = "LEDGER_003"
	LedgerRateLimited    ErrorCode = "LEDGER_004"
	LedgerRefundRejected ErrorCode = "LEDGER_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken: "Authorization token is required",
	AuthInvalidToken: "Invalid authorization token",

	// Validation errors
	ValidationGeneral:          "Validation failed",
	ValidationRequiredField:    "Required field is missing",
	ValidationInvalidFormat:    "Invalid field format",
	ValidationInvalidDate:      "Invalid date format or range",
	ValidationInvalidGroupBy:   "Grouping must be one of: day, week, month",
	ValidationInvalidPaymentID: "Payment intent ID must start with 'pi_'",
	ValidationInvalidAmount:    "Refund amount must be greater than zero",

	// Tool dispatch errors
	ToolNotFound:      "Unknown tool name",
	ToolMalformedArgs: "Tool arguments must be a valid JSON object",

	// Payments ledger errors
	LedgerRequestFailed:  "Payments ledger request failed",
	LedgerBadResponse:    "Payments ledger returned an unexpected response",
	LedgerCircuitOpen:    "Payments ledger temporarily unavailable",
	LedgerRateLimited:    "Payments ledger rate limit reached",
	LedgerRefundRejected: "Refund was rejected by the payments ledger",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode reports whether the code belongs to the known taxonomy
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
