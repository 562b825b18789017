package models

import (
	"time"

	dErrors "regdesk/pkg/domain-errors"
)

// Executive is a staff account. PasswordHash is a bcrypt hash and never
// leaves the service layer.
type Executive struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	EntityType   string    `json:"entity_type"`
	RoleID       *int64    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role groups permissions.
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}

// Permission is a named capability.
type Permission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoginRequest carries credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "username and password are required")
	}
	return nil
}

// LoginResponse is the login payload: the signed token plus the resolved
// staff identity with role and permissions.
type LoginResponse struct {
	Token  string `json:"token"`
	Entity Entity `json:"entity"`
}

// Entity is the public projection of an executive.
type Entity struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	EntityType string    `json:"entity_type"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
