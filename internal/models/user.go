package models

import (
	"strings"
	"time"
)

// User represents an account that can log in and own assets.
type User struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	EmploymentID  string    `json:"employment_id"`
	MobileNumber  *string   `json:"mobile_number,omitempty"`
	PasswordHash  string    `json:"-"` // Never expose in JSON
	Department    string    `json:"department"`
	SubDepartment *string   `json:"sub_department,omitempty"`
	RoleID        int64     `json:"role_id"`
	RoleName      string    `json:"role_name,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterUserRequest is the body for POST /api/users/register.
type RegisterUserRequest struct {
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	EmploymentID  string  `json:"employment_id"`
	MobileNumber  *string `json:"mobile_number,omitempty"`
	Password      string  `json:"password"`
	Department    string  `json:"department"`
	SubDepartment *string `json:"sub_department,omitempty"`
	RoleID        int64   `json:"role_id"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// ChangePasswordRequest is the body for POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Department groups the sub-departments offered on the registration form.
type Department struct {
	Name           string   `json:"name"`
	SubDepartments []string `json:"sub_departments"`
}

// Departments is the fixed department catalogue offered during registration.
var Departments = []Department{
	{Name: "IT Department", SubDepartments: []string{
		"Hardware IT",
		"Software IT",
		"Network Administration",
		"Cybersecurity",
		"Database Administration",
	}},
	{Name: "Non-IT Department", SubDepartments: []string{
		"HR",
		"Aadhar",
		"KYC",
		"GST",
		"Finance",
		"Marketing",
		"Sales",
		"Operations",
		"Legal",
		"Administration",
	}},
}

// SubDepartmentsFor resolves a department type ("IT" or "NonIT", with or
// without the "Department" suffix, any case) to its sub-departments.
func SubDepartmentsFor(departmentType string) ([]string, bool) {
	switch strings.ToLower(departmentType) {
	case "it", "itdepartment":
		return Departments[0].SubDepartments, true
	case "nonit", "nonitdepartment":
		return Departments[1].SubDepartments, true
	}
	return nil, false
}

// UserRegistrationOptions feeds the user registration form dropdowns.
type UserRegistrationOptions struct {
	Roles       []Role       `json:"roles"`
	Departments []Department `json:"departments"`
}

// Redacted returns a copy of the user with sensitive fields removed.
func (u *User) Redacted() User {
	out := *u
	out.PasswordHash = ""
	return out
}
