package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asset-management-api/internal/models"
)

const testSecret = "test-secret-key-that-is-long-enough-32"

func testUser() models.User {
	return models.User{
		ID:           7,
		FullName:     "Jane Admin",
		Email:        "jane@example.com",
		EmploymentID: "EMP-7",
		Department:   "IT Department",
		RoleID:       1,
		RoleName:     models.RoleAdmin,
		IsActive:     true,
	}
}

func TestJWTManager_ValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		issuer   string
		audience string
		expiry   time.Duration
		wantErr  bool
	}{
		{"valid", testSecret, "issuer", "audience", time.Hour, false},
		{"short secret", "too-short", "issuer", "audience", time.Hour, true},
		{"empty issuer", testSecret, "", "audience", time.Hour, true},
		{"empty audience", testSecret, "issuer", "", time.Hour, true},
		{"zero expiry", testSecret, "issuer", "audience", 0, true},
		{"negative expiry", testSecret, "issuer", "audience", -time.Hour, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewJWTManager(tt.secret, tt.issuer, tt.audience, tt.expiry)
			err := m.ValidateConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, "issuer", "audience", time.Hour)
	u := testUser()

	token, expiresAt, err := m.GenerateToken(u)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expiresAt = %v, want in the future", expiresAt)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID() != u.ID {
		t.Errorf("UserID() = %d, want %d", claims.UserID(), u.ID)
	}
	if claims.FullName != u.FullName {
		t.Errorf("FullName = %q, want %q", claims.FullName, u.FullName)
	}
	if claims.Email != u.Email {
		t.Errorf("Email = %q, want %q", claims.Email, u.Email)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleAdmin)
	}
	if claims.RoleID != u.RoleID {
		t.Errorf("RoleID = %d, want %d", claims.RoleID, u.RoleID)
	}
	if claims.EmploymentID != u.EmploymentID {
		t.Errorf("EmploymentID = %q, want %q", claims.EmploymentID, u.EmploymentID)
	}
	if claims.Department != u.Department {
		t.Errorf("Department = %q, want %q", claims.Department, u.Department)
	}
}

func TestJWTManager_ValidateToken_Rejections(t *testing.T) {
	m := NewJWTManager(testSecret, "issuer", "audience", time.Hour)
	u := testUser()

	goodToken, _, err := m.GenerateToken(u)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	otherSecret := NewJWTManager("another-secret-key-that-is-long-enough", "issuer", "audience", time.Hour)
	wrongSecretToken, _, _ := otherSecret.GenerateToken(u)

	otherIssuer := NewJWTManager(testSecret, "someone-else", "audience", time.Hour)
	wrongIssuerToken, _, _ := otherIssuer.GenerateToken(u)

	expired := NewJWTManager(testSecret, "issuer", "audience", -time.Hour)
	expiredToken, _, _ := expired.GenerateToken(u)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", goodToken, false},
		{"garbage", "not.a.token", true},
		{"wrong secret", wrongSecretToken, true},
		{"wrong issuer", wrongIssuerToken, true},
		{"expired", expiredToken, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClaims_HasRole(t *testing.T) {
	c := &Claims{Role: models.RoleManager}

	if !c.HasRole(models.RoleAdmin, models.RoleManager) {
		t.Error("HasRole() = false, want true for listed role")
	}
	if c.HasRole(models.RoleAdmin) {
		t.Error("HasRole() = true, want false for unlisted role")
	}
}

func TestAuthMiddleware(t *testing.T) {
	m := NewJWTManager(testSecret, "issuer", "audience", time.Hour)

	token, _, err := m.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	noRoleUser := testUser()
	noRoleUser.RoleName = ""
	noRoleToken, _, _ := m.GenerateToken(noRoleUser)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFromContext(r.Context()) != 7 {
			t.Errorf("UserIDFromContext() = %d, want 7", UserIDFromContext(r.Context()))
		}
		if RoleFromContext(r.Context()) != models.RoleAdmin {
			t.Errorf("RoleFromContext() = %q, want %q", RoleFromContext(r.Context()), models.RoleAdmin)
		}
		if ClaimsFromContext(r.Context()) == nil {
			t.Error("ClaimsFromContext() = nil, want claims")
		}
		w.WriteHeader(http.StatusNoContent)
	})

	handler := AuthMiddleware(m)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"malformed token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"oversized token", "Bearer " + strings.Repeat("x", 9000), http.StatusUnauthorized},
		{"no role in token", "Bearer " + noRoleToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestMustRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := MustRole(AdminOnly...)(next)

	tests := []struct {
		name       string
		claims     *Claims
		wantStatus int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"wrong role", &Claims{Role: models.RoleEmployee}, http.StatusForbidden},
		{"allowed role", &Claims{Role: models.RoleAdmin}, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/roles/1", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ClaimsKey, tt.claims))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
