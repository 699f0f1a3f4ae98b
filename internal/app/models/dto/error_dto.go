package dto

// ErrorCode is a machine-readable error identifier
type ErrorCode string

// Error codes grouped by category
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidID        ErrorCode = "VAL_002"

	// Conflict errors
	ErrorCodeConflict ErrorCode = "CNF_001"

	// Server errors
	ErrorCodeInternalError ErrorCode = "SRV_001"
)

// ErrorDetail describes an error in an API response
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"RES_001"`
	Message string    `json:"message" example:"Course not found"`
	Details any       `json:"details,omitempty"`
}

// NewErrorDetail creates an ErrorDetail with the given code and message
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails attaches structured details to the error
func (e *ErrorDetail) WithDetails(details any) *ErrorDetail {
	e.Details = details
	return e
}
