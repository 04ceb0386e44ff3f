package models

import (
	"time"
)

// Model is the base model for all other models in the Finance Center backend.
//
// There is no soft-delete: deleted rows are gone.
type Model struct {
	ID        uint      `json:"id" example:"4"`
	CreatedAt time.Time `json:"createdAt" example:"2024-02-15T14:43:27.89977Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-02-15T14:43:27.89977Z"`
}
