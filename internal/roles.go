package internal

import (
	"fmt"
	"net/http"

	"asset-management-api/internal/models"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.Roles.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, roles, "")
}

func (s *Server) listActiveRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.Roles.GetActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, roles, "")
}

func (s *Server) getRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	role, err := s.Roles.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, role, "")
}

func (s *Server) getRoleByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	role, err := s.Roles.GetByName(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, role, "")
}

func (s *Server) createRole(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	role, err := s.Roles.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/roles/%d", role.ID), role, "Role created successfully")
}

func (s *Server) updateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	role, err := s.Roles.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, role, "Role updated successfully")
}

func (s *Server) deleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Roles.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
