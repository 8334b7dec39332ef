package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-management-api/internal/models"
	"asset-management-api/internal/service"
)

func decodeEnvelope(t *testing.T, body string) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestWriteError_KindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid", service.Invalid("Validation failed", "name is required"), http.StatusBadRequest, "Validation failed"},
		{"not found", service.NotFound("Asset not found"), http.StatusNotFound, "Asset not found"},
		{"unauthorized", service.Unauthorized("Invalid email or password"), http.StatusUnauthorized, "Invalid email or password"},
		{"forbidden", service.Forbidden("Insufficient permissions"), http.StatusForbidden, "Insufficient permissions"},
		{"conflict", service.Conflict("Already exists"), http.StatusConflict, "Already exists"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body.String())
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestWriteError_CarriesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, service.Invalid("Validation failed", "name is required", "email is required"))

	resp := decodeEnvelope(t, rec.Body.String())
	assert.Equal(t, []string{"name is required", "email is required"}, resp.Errors)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"x@example.com"}`))
		rec := httptest.NewRecorder()

		var body models.LoginRequest
		require.True(t, decodeJSON(rec, req, &body))
		assert.Equal(t, "x@example.com", body.Email)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))
		rec := httptest.NewRecorder()

		var body models.LoginRequest
		require.False(t, decodeJSON(rec, req, &body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec.Body.String())
		assert.Equal(t, "Invalid request body", resp.Message)
	})
}

func TestPathID(t *testing.T) {
	newRequest := func(raw string) *http.Request {
		req := httptest.NewRequest("GET", "/api/assets/"+raw, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", raw)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		id, ok := pathID(rec, newRequest("42"), "id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		_, ok := pathID(rec, newRequest("abc"), "id")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec.Body.String())
		assert.Equal(t, "Invalid id parameter", resp.Message)
	})

	t.Run("non-positive id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		_, ok := pathID(rec, newRequest("0"), "id")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecoverer(t *testing.T) {
	handler := recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeEnvelope(t, rec.Body.String())
	assert.False(t, resp.Success)
	assert.Equal(t, "An unexpected error occurred", resp.Message)
}
