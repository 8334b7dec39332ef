package internal

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"asset-management-api/internal/models"
	"asset-management-api/internal/service"

	"github.com/go-chi/chi/v5"
)

// pathID parses the named chi URL parameter as an int64; on failure it
// writes the 400 envelope and reports false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("http: failed to encode response: %v", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, models.OK(data, message))
}

// writeCreated sends a 201 with a Location header for the new resource.
func writeCreated(w http.ResponseWriter, location string, data any, message string) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, models.OK(data, message))
}

// writeError maps expected business failures to their status; everything
// else is logged and surfaced as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	if se, ok := service.AsError(err); ok {
		status := http.StatusBadRequest
		switch se.Kind {
		case service.KindNotFound:
			status = http.StatusNotFound
		case service.KindUnauthorized:
			status = http.StatusUnauthorized
		case service.KindForbidden:
			status = http.StatusForbidden
		case service.KindConflict:
			status = http.StatusConflict
		}
		writeJSON(w, status, models.Fail(se.Message, se.Fields...))
		return
	}

	log.Printf("http: unexpected error: %v", err)
	writeJSON(w, http.StatusInternalServerError, models.Fail("An unexpected error occurred"))
}

// decodeJSON reads the request body into dst; on failure it writes the 400
// envelope and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid request body"))
		return false
	}
	return true
}

// recoverer converts panics into the generic 500 envelope.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("http: panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				writeJSON(w, http.StatusInternalServerError, models.Fail("An unexpected error occurred"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
