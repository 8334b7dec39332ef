package internal

import (
	"fmt"
	"net/http"

	"asset-management-api/internal/models"
)

func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.Vendors.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, vendors, "")
}

func (s *Server) getVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	v, err := s.Vendors.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, v, "")
}

func (s *Server) createVendor(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVendorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := s.Vendors.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/vendors/%d", v.VendorID), v, "Vendor created successfully")
}

func (s *Server) updateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateVendorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := s.Vendors.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, v, "Vendor updated successfully")
}

func (s *Server) deleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Vendors.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
