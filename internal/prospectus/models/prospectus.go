package models

import (
	"time"

	dErrors "regdesk/pkg/domain-errors"
)

// Prospectus is a prospective client record. Its IsRegistered flag is
// derived state: the registration coordinator is the only writer, and the
// flag may lag the truth because the coordinator updates it best-effort.
type Prospectus struct {
	ID                    int64     `json:"id"`
	Date                  string    `json:"date"`
	Email                 string    `json:"email"`
	ExecutiveID           *int64    `json:"executive_id"`
	RegID                 string    `json:"reg_id"`
	ClientName            string    `json:"client_name"`
	Phone                 string    `json:"phone"`
	Department            string    `json:"department"`
	State                 string    `json:"state"`
	TechPerson            string    `json:"tech_person"`
	Requirement           string    `json:"requirement"`
	ProposedServicePeriod string    `json:"proposed_service_period"`
	Services              string    `json:"services"`
	IsRegistered          bool      `json:"isregistered"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CreateRequest carries the intake fields. OtherDepartment, when present,
// wins over Department, matching the intake form's free-text fallback.
type CreateRequest struct {
	Date                  string `json:"date"`
	Email                 string `json:"email"`
	ExecutiveID           *int64 `json:"executive_id"`
	RegID                 string `json:"reg_id"`
	ClientName            string `json:"client_name"`
	Phone                 string `json:"phone"`
	Department            string `json:"department"`
	OtherDepartment       string `json:"other_department"`
	State                 string `json:"state"`
	TechPerson            string `json:"tech_person"`
	Requirement           string `json:"requirement"`
	ProposedServicePeriod string `json:"proposed_service_period"`
	Services              string `json:"services"`
}

// Validate enforces the intake minimum.
func (r *CreateRequest) Validate() error {
	if r.ClientName == "" {
		return dErrors.New(dErrors.CodeValidation, "client_name is required")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	return nil
}

// Prospectus builds the row to insert. New prospects are never registered.
func (r *CreateRequest) Prospectus() *Prospectus {
	department := r.Department
	if r.OtherDepartment != "" {
		department = r.OtherDepartment
	}
	return &Prospectus{
		Date:                  r.Date,
		Email:                 r.Email,
		ExecutiveID:           r.ExecutiveID,
		RegID:                 r.RegID,
		ClientName:            r.ClientName,
		Phone:                 r.Phone,
		Department:            department,
		State:                 r.State,
		TechPerson:            r.TechPerson,
		Requirement:           r.Requirement,
		ProposedServicePeriod: r.ProposedServicePeriod,
		Services:              r.Services,
	}
}

// Patch carries partial prospectus updates. IsRegistered is deliberately
// absent: only the registration coordinator writes the flag.
type Patch struct {
	Date                  *string `json:"date"`
	Email                 *string `json:"email"`
	ExecutiveID           *int64  `json:"executive_id"`
	RegID                 *string `json:"reg_id"`
	ClientName            *string `json:"client_name"`
	Phone                 *string `json:"phone"`
	Department            *string `json:"department"`
	State                 *string `json:"state"`
	TechPerson            *string `json:"tech_person"`
	Requirement           *string `json:"requirement"`
	ProposedServicePeriod *string `json:"proposed_service_period"`
	Services              *string `json:"services"`
}
