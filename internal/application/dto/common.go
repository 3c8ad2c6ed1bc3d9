package dto

// ErrorResponse HTTP error body. Error carries the human-readable message;
// Code is a stable machine tag.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// CreatedResponse body for successful writes, mirroring the message + id
// shape the front end expects.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// HealthResponse body for GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
