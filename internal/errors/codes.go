package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidUserID ErrorCode = "VALIDATION_005"
	ValidationInvalidFile   ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Budget error codes (BUDGET_*)
const (
	BudgetInsufficientHistory ErrorCode = "BUDGET_001"
	BudgetNotFound            ErrorCode = "BUDGET_002"
	BudgetUnresolvedDeficit   ErrorCode = "BUDGET_003"
	BudgetNoSpendingData      ErrorCode = "BUDGET_004"
	BudgetExportFailed        ErrorCode = "BUDGET_005"
)

// Forecast error codes (FORECAST_*)
const (
	ForecastModelFitFailed ErrorCode = "FORECAST_001"
	ForecastTimeout        ErrorCode = "FORECAST_002"
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
	ValidationInvalidUserID: "Invalid user ID format",
	ValidationInvalidFile:   "Uploaded statement could not be read",
	ValidationInvalidDate:   "Invalid date format or range",

	// Budget errors
	BudgetInsufficientHistory: "At least 3 months of history are required to build a budget",
	BudgetNotFound:            "Budget not found",
	BudgetUnresolvedDeficit:   "Budget still exceeds available income after all reductions",
	BudgetNoSpendingData:      "No spending data found in the provided transactions",
	BudgetExportFailed:        "Budget export could not be generated",

	// Forecast errors
	ForecastModelFitFailed: "Forecast model could not be fitted; historical mean used",
	ForecastTimeout:        "Forecasting did not finish in time",

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
