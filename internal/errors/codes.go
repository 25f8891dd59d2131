package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerInvalidID ErrorCode = "CUSTOMER_002"
	CustomerNoResults ErrorCode = "CUSTOMER_003"
)

// Alert error codes (ALERT_*)
const (
	AlertNotFound  ErrorCode = "ALERT_001"
	AlertInvalidID ErrorCode = "ALERT_002"
)

// Detection error codes (DETECTION_*)
const (
	DetectionEventNotFound  ErrorCode = "DETECTION_001"
	DetectionInvalidPayload ErrorCode = "DETECTION_002"
)

// Gateway error codes (GATEWAY_*) cover failures of the remote data store
// and its notification stream. They are recoverable: the feed keeps its
// last-known-good contents and the dashboard stays interactive.
const (
	GatewayQueryFailed        ErrorCode = "GATEWAY_001"
	GatewaySubscriptionFailed ErrorCode = "GATEWAY_002"
	GatewayUnavailable        ErrorCode = "GATEWAY_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Customer errors
	CustomerNotFound:  "Customer not found",
	CustomerInvalidID: "Invalid customer ID format",
	CustomerNoResults: "Customer search returned no results",

	// Alert errors
	AlertNotFound:  "Alert not found in the feed",
	AlertInvalidID: "Invalid alert ID format",

	// Detection errors
	DetectionEventNotFound:  "Detection event not found",
	DetectionInvalidPayload: "Detection event payload is malformed",

	// Gateway errors
	GatewayQueryFailed:        "Failed to load detection events",
	GatewaySubscriptionFailed: "Detection event stream subscription failed",
	GatewayUnavailable:        "Remote data gateway is unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
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
