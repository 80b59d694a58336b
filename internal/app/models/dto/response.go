package dto

import "time"

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewPartialSuccessResponse carries data that was persisted together with a
// warning about the step that failed
func NewPartialSuccessResponse(data interface{}, warning *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Error:     warning,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PhotoUploadResponse is returned by photo and logo uploads
type PhotoUploadResponse struct {
	Path      string `json:"path" example:"advisors/7/1700000000000.jpg"`
	PublicURL string `json:"publicUrl" example:"http://localhost:8080/uploads/avatars/advisors/7/1700000000000.jpg"`
}

// HealthResponse reports service and database status
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
