package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"asset-management-api/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for JWT claims
	ClaimsKey contextKey = "claims"
	// UserIDKey is the context key for user ID
	UserIDKey contextKey = "userID"
	// RoleKey is the context key for the user's role name
	RoleKey contextKey = "role"
)

// Role allow-lists used across the route table.
var (
	AdminOnly      = []string{models.RoleAdmin}
	AdminAndIT     = []string{models.RoleAdmin, models.RoleITSupport}
	AdminManagerIT = []string{models.RoleAdmin, models.RoleManager, models.RoleITSupport}
	AllRoles       = []string{models.RoleAdmin, models.RoleManager, models.RoleEmployee, models.RoleITSupport}
)

// ClaimsFromContext extracts the JWT claims from the request context
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

// UserIDFromContext extracts the user ID from the request context
func UserIDFromContext(ctx context.Context) int64 {
	if v := ctx.Value(UserIDKey); v != nil {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RoleFromContext extracts the role name from the request context
func RoleFromContext(ctx context.Context) string {
	if v := ctx.Value(RoleKey); v != nil {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// sendErrorResponse sends a failure envelope
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(models.Fail(message)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// validateTokenFormat performs basic token format validation
func validateTokenFormat(tokenString string) error {
	if len(tokenString) == 0 {
		return errors.New("token cannot be empty")
	}
	if len(tokenString) > 8192 { // 8KB limit
		return errors.New("token size exceeds maximum allowed")
	}
	// Basic JWT format validation (3 parts separated by dots)
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return errors.New("invalid JWT token format")
	}
	return nil
}

// AuthMiddleware validates JWT tokens and sets user context
func AuthMiddleware(jwtManager *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				sendErrorResponse(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				sendErrorResponse(w, "Invalid authorization header format. Expected: Bearer <token>", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if err := validateTokenFormat(tokenString); err != nil {
				sendErrorResponse(w, "Invalid token format: "+err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.ValidateToken(tokenString)
			if err != nil {
				message := "Invalid or expired token"
				if strings.Contains(err.Error(), "expired") {
					message = "Token has expired"
				}
				sendErrorResponse(w, message, http.StatusUnauthorized)
				return
			}

			if claims.UserID() <= 0 {
				sendErrorResponse(w, "Invalid user ID in token", http.StatusUnauthorized)
				return
			}
			if claims.Role == "" {
				sendErrorResponse(w, "No role assigned to user", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			ctx = context.WithValue(ctx, UserIDKey, claims.UserID())
			ctx = context.WithValue(ctx, RoleKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MustRole creates middleware that requires one of the given roles
func MustRole(requiredRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				sendErrorResponse(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			if !claims.HasRole(requiredRoles...) {
				sendErrorResponse(w, "Insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
