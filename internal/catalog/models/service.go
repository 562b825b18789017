package models

import (
	"time"

	dErrors "regdesk/pkg/domain-errors"
)

// Service is a catalog entry registrations refer to by name.
type Service struct {
	ID          int64     `json:"id"`
	ServiceName string    `json:"service_name"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Fee         float64   `json:"fee"`
	MinDuration string    `json:"min_duration"`
	MaxDuration string    `json:"max_duration"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRequest carries a new catalog entry.
type CreateRequest struct {
	ServiceName string  `json:"service_name"`
	ServiceType string  `json:"service_type"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee"`
	MinDuration string  `json:"min_duration"`
	MaxDuration string  `json:"max_duration"`
}

func (r *CreateRequest) Validate() error {
	if r.ServiceName == "" || r.Fee == 0 {
		return dErrors.New(dErrors.CodeValidation, "service name and fee are required")
	}
	return nil
}

func (r *CreateRequest) Service() *Service {
	return &Service{
		ServiceName: r.ServiceName,
		ServiceType: r.ServiceType,
		Description: r.Description,
		Fee:         r.Fee,
		MinDuration: r.MinDuration,
		MaxDuration: r.MaxDuration,
	}
}

// Patch carries partial catalog updates.
type Patch struct {
	ServiceName *string  `json:"service_name"`
	ServiceType *string  `json:"service_type"`
	Description *string  `json:"description"`
	Fee         *float64 `json:"fee"`
	MinDuration *string  `json:"min_duration"`
	MaxDuration *string  `json:"max_duration"`
}
