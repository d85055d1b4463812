package dto

import "time"

// APIResponse is the envelope of every successful JSON response.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Message   string       `json:"message,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data, Timestamp: time.Now()}
}

// NewMessageResponse carries a notice such as "Document approved successfully!".
func NewMessageResponse(message string, data interface{}) APIResponse {
	return APIResponse{Data: data, Message: message, Timestamp: time.Now()}
}
