package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

// AuthUserRepository is the slice of the user store the auth service needs.
type AuthUserRepository interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// TokenIssuer mints signed tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(u models.User) (string, time.Time, error)
}

type AuthService struct {
	Users  AuthUserRepository
	Tokens TokenIssuer
}

func NewAuthService(users AuthUserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

// Login authenticates by email and password. Unknown email, wrong
// password and deactivated accounts all produce the same message so
// callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return models.LoginResponse{}, Invalid("Email and password are required")
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.LoginResponse{}, Unauthorized("Invalid email or password")
	}
	if err != nil {
		return models.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return models.LoginResponse{}, Unauthorized("Invalid email or password")
	}
	if !u.IsActive {
		return models.LoginResponse{}, Unauthorized("Invalid email or password")
	}

	token, expiresAt, err := s.Tokens.GenerateToken(u)
	if err != nil {
		return models.LoginResponse{}, err
	}

	log.Printf("auth: user %d (%s) logged in", u.ID, u.Email)
	return models.LoginResponse{Token: token, ExpiresAt: expiresAt, User: u.Redacted()}, nil
}

// ChangePassword verifies the current password before setting a new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return Invalid("New password must be at least 8 characters")
	}

	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return NotFound("User not found")
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return Invalid("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return err
	}
	log.Printf("auth: user %d changed password", u.ID)
	return nil
}
