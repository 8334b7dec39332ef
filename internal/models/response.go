package models

// APIResponse is the uniform envelope every endpoint replies with.
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK wraps a successful payload.
func OK(data any, message string) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail wraps a failure message with optional per-field errors.
func Fail(message string, errs ...string) APIResponse {
	return APIResponse{Success: false, Message: message, Errors: errs}
}
