package models

// Response status values shared by every endpoint
const (
	StatusSuccess = "success"
	StatusHealthy = "healthy"
	StatusError   = "error"
)

// ErrorResponse is the structured body returned for every failed request
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error" example:"No text provided"`
}

// NewErrorResponse builds an error body with status "error"
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  message,
	}
}
