package internal

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"asset-management-api/internal/auth"
	"asset-management-api/internal/models"

	"github.com/go-chi/chi/v5"
)

// registerAsset creates a new asset owned by the acting user
func (s *Server) registerAsset(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	createdBy := auth.UserIDFromContext(r.Context())
	a, err := s.Assets.Register(r.Context(), req, createdBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/assets/%d", a.ID), a, "Asset registered successfully")
}

func (s *Server) listAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.Assets.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, assets, "")
}

func (s *Server) getAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	a, err := s.Assets.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, a, "")
}

func (s *Server) getAssetBySerial(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serialNumber")
	a, err := s.Assets.GetBySerialNumber(r.Context(), serial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, a, "")
}

func (s *Server) listAssetsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	assets, err := s.Assets.GetByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, assets, "")
}

func (s *Server) listAssetsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}

	assets, err := s.Assets.GetByCategoryID(r.Context(), categoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, assets, "")
}

func (s *Server) listAssetsByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, ok := pathID(w, r, "locationId")
	if !ok {
		return
	}

	assets, err := s.Assets.GetByLocationID(r.Context(), locationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, assets, "")
}

func (s *Server) listAssetsByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")
	assets, err := s.Assets.GetByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, assets, "")
}

func (s *Server) updateAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := s.Assets.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, a, "Asset updated successfully")
}

func (s *Server) assignAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.AssignAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := s.Assets.Assign(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, a, "Asset assigned successfully")
}

func (s *Server) unassignAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	a, err := s.Assets.Unassign(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, a, "Asset unassigned successfully")
}

func (s *Server) deleteAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Assets.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) assetRegistrationOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.Assets.RegistrationOptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, opts, "")
}

// exportAssets streams the asset register as an xlsx attachment
func (s *Server) exportAssets(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("assets-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := s.Exporter.WriteAssets(r.Context(), w); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("assets: export failed: %v", err)
	}
}
