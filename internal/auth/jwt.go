package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"asset-management-api/internal/models"
)

// Claims represents the JWT claims structure
type Claims struct {
	FullName     string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RoleID       int64  `json:"role_id"`
	EmploymentID string `json:"employment_id"`
	Department   string `json:"department"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT operations
type JWTManager struct {
	secret   string
	issuer   string
	audience string
	expiry   time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret, issuer, audience string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}
}

// ValidateConfig checks the manager is usable before serving traffic.
func (j *JWTManager) ValidateConfig() error {
	if len(j.secret) < 32 {
		return errors.New("jwt secret must be at least 32 characters")
	}
	if j.issuer == "" || j.audience == "" {
		return errors.New("jwt issuer and audience are required")
	}
	if j.expiry <= 0 {
		return errors.New("jwt expiry must be positive")
	}
	return nil
}

// GenerateToken creates a new JWT token for the user.
func (j *JWTManager) GenerateToken(u models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.expiry)
	claims := &Claims{
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         u.RoleName,
		RoleID:       u.RoleID,
		EmploymentID: u.EmploymentID,
		Department:   u.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Audience:  []string{j.audience},
			Subject:   fmt.Sprintf("%d", u.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken validates and parses a JWT token
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secret), nil
	}, jwt.WithIssuer(j.issuer), jwt.WithAudience(j.audience))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// UserID returns the numeric subject, or 0 when it does not parse.
func (c *Claims) UserID() int64 {
	var id int64
	fmt.Sscanf(c.Subject, "%d", &id)
	return id
}

// HasRole checks if the user's role is one of the required roles
func (c *Claims) HasRole(requiredRoles ...string) bool {
	for _, required := range requiredRoles {
		if c.Role == required {
			return true
		}
	}
	return false
}
