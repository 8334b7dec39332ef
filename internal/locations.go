package internal

import (
	"fmt"
	"net/http"

	"asset-management-api/internal/models"
)

func (s *Server) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.Locations.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, locations, "")
}

func (s *Server) listActiveLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.Locations.GetActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, locations, "")
}

func (s *Server) getLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	l, err := s.Locations.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, l, "")
}

func (s *Server) createLocation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := s.Locations.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/locations/%d", l.ID), l, "Location created successfully")
}

func (s *Server) updateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateLocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := s.Locations.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, l, "Location updated successfully")
}

func (s *Server) deleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Locations.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
