package internal

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"asset-management-api/internal/auth"
	"asset-management-api/internal/models"
	"asset-management-api/internal/service"
)

// listPurchaseOrders lists active orders, optionally filtered by status
// (repeatable or comma-separated), requester, category, location, or a
// from/to date range (either bound may be omitted). Filters are applied
// one at a time, status first.
func (s *Server) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		orders []models.PurchaseOrder
		err    error
	)
	switch {
	case len(q["status"]) > 0:
		var statuses []string
		for _, raw := range q["status"] {
			for _, st := range strings.Split(raw, ",") {
				if st = strings.TrimSpace(st); st != "" {
					statuses = append(statuses, st)
				}
			}
		}
		orders, err = s.Orders.GetByStatuses(r.Context(), statuses)
	case q.Get("requester") != "":
		orders, err = s.Orders.GetByRequester(r.Context(), q.Get("requester"))
	case q.Get("category") != "":
		orders, err = s.Orders.GetByCategory(r.Context(), q.Get("category"))
	case q.Get("location") != "":
		orders, err = s.Orders.GetByLocation(r.Context(), q.Get("location"))
	case q.Get("from") != "" || q.Get("to") != "":
		var from, to time.Time
		from, to, err = dateRange(q.Get("from"), q.Get("to"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.Fail("Invalid date filter; use YYYY-MM-DD or RFC3339"))
			return
		}
		orders, err = s.Orders.GetByDateRange(r.Context(), from, to)
	default:
		orders, err = s.Orders.GetAll(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, orders, "")
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// dateRange parses optional from/to bounds. Either bound may be omitted
// for an open-ended range: from defaults to the zero time, to defaults to
// a distant horizon.
func dateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from time.Time
	to := time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	if fromStr != "" {
		parsed, err := parseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := parseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

// purchaseOrderStatuses returns the fixed status set for dropdowns
func (s *Server) purchaseOrderStatuses(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, service.PurchaseOrderStatuses, "")
}

func (s *Server) getPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	po, err := s.Orders.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, po, "")
}

func (s *Server) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	createdBy := auth.UserIDFromContext(r.Context())
	po, err := s.Orders.Create(r.Context(), req, createdBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/purchaseorders/%d", po.ID), po, "Purchase order created successfully")
}

func (s *Server) updatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePurchaseOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updatedBy := auth.UserIDFromContext(r.Context())
	po, err := s.Orders.Update(r.Context(), id, req, updatedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, po, "Purchase order updated successfully")
}

func (s *Server) updatePurchaseOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePurchaseOrderStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updatedBy := auth.UserIDFromContext(r.Context())
	po, err := s.Orders.UpdateStatus(r.Context(), id, req.Status, updatedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, po, "Purchase order status updated successfully")
}

func (s *Server) deletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.Orders.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
