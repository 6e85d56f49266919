package dto

import "encoding/json"

// Envelope is the wrapper around every response body of the REST surface.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"` // some error paths only set this
}

// ServerMessage returns whichever message field the server filled in.
func (e Envelope) ServerMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// SuccessResponse is used by the reference backend to wrap data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is used by the reference backend for failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
