package models

// APIResponse is the uniform envelope for acknowledgements and failures.
// Successful reads and writes return the entity (or list) directly.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SuccessResponse creates an acknowledgement body.
func SuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// ErrorResponse creates a failure body.
func ErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// CountResponse is the body for count endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}
