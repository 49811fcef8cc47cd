package dto

import "time"

// APIResponse is the uniform response envelope for all endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewDataResponse wraps a payload in the standard envelope
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse wraps an error detail in the standard envelope
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
