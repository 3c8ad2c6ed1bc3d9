package dto

import "time"

// MaterialRequest input for creating or updating a catalog entry.
type MaterialRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Category     string `json:"category" validate:"required,oneof=cement steel tiles other"`
	Manufacturer string `json:"manufacturer" validate:"required,max=200"`
	Grade        string `json:"grade" validate:"omitempty,max=100"`
	Type         string `json:"type" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty,max=1000"`
	Unit         string `json:"unit" validate:"omitempty,max=50"`
}

// MaterialResponse catalog entry output.
type MaterialResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Manufacturer string    `json:"manufacturer"`
	Grade        string    `json:"grade,omitempty"`
	Type         string    `json:"type,omitempty"`
	Description  string    `json:"description,omitempty"`
	Unit         string    `json:"unit"`
	CreatedAt    time.Time `json:"created_at"`
}
