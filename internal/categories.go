package internal

import (
	"fmt"
	"net/http"

	"asset-management-api/internal/models"
)

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Categories.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, categories, "")
}

// listActiveCategories is mounted publicly for the registration form
func (s *Server) listActiveCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Categories.GetActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, categories, "")
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := s.Categories.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, c, "")
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := s.Categories.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/categories/%d", c.ID), c, "Category created successfully")
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := s.Categories.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, c, "Category updated successfully")
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Categories.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
