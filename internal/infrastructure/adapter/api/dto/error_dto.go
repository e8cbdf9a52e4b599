package dto

// ErrorResponse represents a standardized error response for the API.
// The proxy routes leave Code empty.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code,omitempty"`
}
