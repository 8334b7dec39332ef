package internal

import (
	"net/http"

	"asset-management-api/internal/auth"
	"asset-management-api/internal/models"
)

// login handles user authentication
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := s.Auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, resp, "Login successful")
}

// me echoes the authenticated principal's claims
func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, models.Fail("Authentication required"))
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"user_id":       claims.UserID(),
		"full_name":     claims.FullName,
		"email":         claims.Email,
		"role":          claims.Role,
		"role_id":       claims.RoleID,
		"employment_id": claims.EmploymentID,
		"department":    claims.Department,
		"expires_at":    claims.ExpiresAt,
	}, "")
}

// changePassword handles password changes for the current user
func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, models.Fail("Authentication required"))
		return
	}

	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.Auth.ChangePassword(r.Context(), userID, req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil, "Password changed successfully")
}

// logout is a stateless acknowledgement; the token itself is discarded
// client-side.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, true, "Logout successful. Please remove the token from client storage.")
}
