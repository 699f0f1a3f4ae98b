package dto

import "time"

// APIResponse is the standard response envelope
type APIResponse struct {
	Data      any          `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewSuccessResponse wraps data in the response envelope
func NewSuccessResponse(data any) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse wraps an error detail in the response envelope
func NewErrorResponse(err *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     err,
		Timestamp: time.Now().UTC(),
	}
}
