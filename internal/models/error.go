package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants. Codes are the stable classification; messages are
// the human-readable detail and may change wording.
const (
	ErrBadRequest         = "BAD_REQUEST"
	ErrUnauthorized       = "UNAUTHORIZED"
	ErrNotFound           = "NOT_FOUND"
	ErrConflict           = "CONFLICT"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrValidationFailed   = "VALIDATION_FAILED"
	ErrInternalServer     = "INTERNAL_SERVER_ERROR"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// StatusResponse is the confirmation payload returned by destructive
// operations, e.g. {"status": "completed", "detail": "Ingredient ..."}.
type StatusResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// NewCompletedResponse builds a StatusResponse for a finished operation.
func NewCompletedResponse(detail string) StatusResponse {
	return StatusResponse{Status: "completed", Detail: detail}
}
