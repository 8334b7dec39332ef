package internal

import (
	"fmt"
	"net/http"

	"asset-management-api/internal/models"
)

func (s *Server) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.Brands.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, brands, "")
}

func (s *Server) listActiveBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.Brands.GetActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, brands, "")
}

func (s *Server) getBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	b, err := s.Brands.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, b, "")
}

func (s *Server) createBrand(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBrandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := s.Brands.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/brands/%d", b.ID), b, "Brand created successfully")
}

func (s *Server) updateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateBrandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := s.Brands.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, b, "Brand updated successfully")
}

func (s *Server) deleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Brands.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
