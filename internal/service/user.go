package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, email, employmentID string) (bool, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// RoleLookup is the read-only slice of the role store other services need.
type RoleLookup interface {
	GetByID(ctx context.Context, id int64) (models.Role, error)
	GetActive(ctx context.Context) ([]models.Role, error)
}

type UserService struct {
	Users UserRepository
	Roles RoleLookup
}

func NewUserService(users UserRepository, roles RoleLookup) *UserService {
	return &UserService{Users: users, Roles: roles}
}

// Register creates a user after checking the role exists and the email and
// employment id are unused.
func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	var missing []string
	if strings.TrimSpace(req.FullName) == "" {
		missing = append(missing, "full_name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email is required")
	}
	if strings.TrimSpace(req.EmploymentID) == "" {
		missing = append(missing, "employment_id is required")
	}
	if len(req.Password) < 8 {
		missing = append(missing, "password must be at least 8 characters")
	}
	if strings.TrimSpace(req.Department) == "" {
		missing = append(missing, "department is required")
	}
	if len(missing) > 0 {
		return models.User{}, Invalid("Validation failed", missing...)
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !strings.Contains(email, "@") {
		return models.User{}, Invalid("Validation failed", "email is not a valid address")
	}

	taken, err := s.Users.Exists(ctx, email, req.EmploymentID)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, Invalid("User with this email or employment ID already exists")
	}

	if _, err := s.Roles.GetByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, Invalid("Invalid role selected")
		}
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	u, err := s.Users.Create(ctx, models.User{
		FullName:      strings.TrimSpace(req.FullName),
		Email:         email,
		EmploymentID:  strings.TrimSpace(req.EmploymentID),
		MobileNumber:  req.MobileNumber,
		PasswordHash:  string(hash),
		Department:    req.Department,
		SubDepartment: req.SubDepartment,
		RoleID:        req.RoleID,
		IsActive:      true,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.User{}, Invalid("User with this email or employment ID already exists")
		}
		return models.User{}, err
	}

	log.Printf("users: registered %d (%s)", u.ID, u.Email)
	return u.Redacted(), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, NotFound("User not found")
	}
	if err != nil {
		return models.User{}, err
	}
	return u.Redacted(), nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, NotFound("User not found")
	}
	if err != nil {
		return models.User{}, err
	}
	return u.Redacted(), nil
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Redacted()
	}
	return users, nil
}

// Delete removes the user record entirely.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.Users.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NotFound("User not found")
	}
	if err != nil {
		return err
	}
	log.Printf("users: deleted %d", id)
	return nil
}

// RegistrationOptions returns the dropdown data for the registration form.
func (s *UserService) RegistrationOptions(ctx context.Context) (models.UserRegistrationOptions, error) {
	roles, err := s.Roles.GetActive(ctx)
	if err != nil {
		return models.UserRegistrationOptions{}, err
	}
	return models.UserRegistrationOptions{
		Roles:       roles,
		Departments: models.Departments,
	}, nil
}
