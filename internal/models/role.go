package models

import "time"

// Role is a named permission level referenced by users.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	UserCount   int       `json:"user_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRoleRequest is the body for POST /api/roles.
type CreateRoleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// UpdateRoleRequest is the body for PUT /api/roles/{id}.
type UpdateRoleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// Well-known role names used by the authorization allow-lists.
const (
	RoleAdmin     = "Admin"
	RoleManager   = "Manager"
	RoleEmployee  = "Employee"
	RoleITSupport = "IT Support"
)
