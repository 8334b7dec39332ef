package internal

import (
	"fmt"
	"net/http"

	"asset-management-api/internal/models"

	"github.com/go-chi/chi/v5"
)

// registerUser creates a new user account
func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := s.Users.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, fmt.Sprintf("/api/users/%d", u.ID), u, "User registered successfully")
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Users.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, users, "")
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	u, err := s.Users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, u, "")
}

func (s *Server) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	u, err := s.Users.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, u, "")
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Users.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// userRegistrationOptions feeds the registration form; mounted publicly
func (s *Server) userRegistrationOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.Users.RegistrationOptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, opts, "")
}

// listDepartments serves the fixed department catalogue; mounted publicly
func (s *Server) listDepartments(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, models.Departments, "Departments retrieved successfully")
}

func (s *Server) listSubDepartments(w http.ResponseWriter, r *http.Request) {
	departmentType := chi.URLParam(r, "type")
	subs, ok := models.SubDepartmentsFor(departmentType)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid department type. Use 'IT' or 'NonIT'"))
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"department_type": departmentType,
		"sub_departments": subs,
	}, fmt.Sprintf("Sub-departments for %s retrieved successfully", departmentType))
}
