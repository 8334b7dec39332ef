package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

// Purchase order statuses. The set is fixed; PATCH status validates against
// it, while the generic update writes whatever it is given.
const (
	PurchaseOrderPending    = "Pending"
	PurchaseOrderApproved   = "Approved"
	PurchaseOrderRejected   = "Rejected"
	PurchaseOrderInProgress = "In Progress"
	PurchaseOrderCompleted  = "Completed"
	PurchaseOrderCancelled  = "Cancelled"
)

var PurchaseOrderStatuses = []string{
	PurchaseOrderPending,
	PurchaseOrderApproved,
	PurchaseOrderRejected,
	PurchaseOrderInProgress,
	PurchaseOrderCompleted,
	PurchaseOrderCancelled,
}

// IsValidPurchaseOrderStatus reports whether s is in the fixed status set.
func IsValidPurchaseOrderStatus(s string) bool {
	for _, v := range PurchaseOrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type PurchaseOrderRepository interface {
	GetByID(ctx context.Context, id int64) (models.PurchaseOrder, error)
	GetAll(ctx context.Context) ([]models.PurchaseOrder, error)
	GetByStatuses(ctx context.Context, statuses []string) ([]models.PurchaseOrder, error)
	GetByRequester(ctx context.Context, requester string) ([]models.PurchaseOrder, error)
	GetByCategory(ctx context.Context, category string) ([]models.PurchaseOrder, error)
	GetByLocation(ctx context.Context, location string) ([]models.PurchaseOrder, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]models.PurchaseOrder, error)
	PRIDExists(ctx context.Context, prID string) (bool, error)
	Create(ctx context.Context, po models.PurchaseOrder) (models.PurchaseOrder, error)
	Update(ctx context.Context, po models.PurchaseOrder) (models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id int64, status string, updatedBy *int64) (models.PurchaseOrder, error)
	Delete(ctx context.Context, id int64) error
}

// ActingUserLookup verifies the token subject still maps to an active user.
type ActingUserLookup interface {
	ExistsID(ctx context.Context, id int64) (bool, error)
}

type PurchaseOrderService struct {
	Orders PurchaseOrderRepository
	Users  ActingUserLookup
}

func NewPurchaseOrderService(orders PurchaseOrderRepository, users ActingUserLookup) *PurchaseOrderService {
	return &PurchaseOrderService{Orders: orders, Users: users}
}

func (s *PurchaseOrderService) requireActingUser(ctx context.Context, userID int64) error {
	ok, err := s.Users.ExistsID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return Unauthorized("Acting user does not exist")
	}
	return nil
}

func (s *PurchaseOrderService) Create(ctx context.Context, req models.CreatePurchaseOrderRequest, createdBy int64) (models.PurchaseOrder, error) {
	var problems []string
	if strings.TrimSpace(req.PRID) == "" {
		problems = append(problems, "pr_id is required")
	}
	if strings.TrimSpace(req.RequesterName) == "" {
		problems = append(problems, "requester_name is required")
	}
	if strings.TrimSpace(req.AssetName) == "" {
		problems = append(problems, "asset_name is required")
	}
	if req.Quantity <= 0 {
		problems = append(problems, "quantity must be positive")
	}
	if len(problems) > 0 {
		return models.PurchaseOrder{}, Invalid("Validation failed", problems...)
	}

	if err := s.requireActingUser(ctx, createdBy); err != nil {
		return models.PurchaseOrder{}, err
	}

	prID := strings.TrimSpace(req.PRID)
	taken, err := s.Orders.PRIDExists(ctx, prID)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	if taken {
		return models.PurchaseOrder{}, Invalid("PR_ID already exists")
	}

	status := req.Status
	if status == "" {
		status = PurchaseOrderPending
	}
	if !IsValidPurchaseOrderStatus(status) {
		return models.PurchaseOrder{}, Invalid("Invalid purchase order status")
	}

	orderedAt := time.Now().UTC()
	if req.OrderDateTime != nil {
		orderedAt = *req.OrderDateTime
	}

	po, err := s.Orders.Create(ctx, models.PurchaseOrder{
		PRID:          prID,
		RequesterName: strings.TrimSpace(req.RequesterName),
		ProcessName:   req.ProcessName,
		Category:      req.Category,
		ITCategory:    req.ITCategory,
		AssetName:     strings.TrimSpace(req.AssetName),
		Location:      req.Location,
		Quantity:      req.Quantity,
		Status:        status,
		OrderDateTime: orderedAt,
		CreatedByID:   createdBy,
		IsActive:      true,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.PurchaseOrder{}, Invalid("PR_ID already exists")
		}
		return models.PurchaseOrder{}, err
	}
	log.Printf("purchaseorders: created %d (%s)", po.ID, po.PRID)
	return po, nil
}

func (s *PurchaseOrderService) GetByID(ctx context.Context, id int64) (models.PurchaseOrder, error) {
	po, err := s.Orders.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.PurchaseOrder{}, NotFound("Purchase order not found")
	}
	return po, err
}

func (s *PurchaseOrderService) GetAll(ctx context.Context) ([]models.PurchaseOrder, error) {
	return s.Orders.GetAll(ctx)
}

// GetByStatuses filters by one or more statuses, each validated.
func (s *PurchaseOrderService) GetByStatuses(ctx context.Context, statuses []string) ([]models.PurchaseOrder, error) {
	for _, st := range statuses {
		if !IsValidPurchaseOrderStatus(st) {
			return nil, Invalid("Invalid purchase order status")
		}
	}
	return s.Orders.GetByStatuses(ctx, statuses)
}

func (s *PurchaseOrderService) GetByRequester(ctx context.Context, requester string) ([]models.PurchaseOrder, error) {
	return s.Orders.GetByRequester(ctx, requester)
}

func (s *PurchaseOrderService) GetByCategory(ctx context.Context, category string) ([]models.PurchaseOrder, error) {
	return s.Orders.GetByCategory(ctx, category)
}

func (s *PurchaseOrderService) GetByLocation(ctx context.Context, location string) ([]models.PurchaseOrder, error) {
	return s.Orders.GetByLocation(ctx, location)
}

func (s *PurchaseOrderService) GetByDateRange(ctx context.Context, from, to time.Time) ([]models.PurchaseOrder, error) {
	if to.Before(from) {
		return nil, Invalid("Invalid date range")
	}
	return s.Orders.GetByDateRange(ctx, from, to)
}

// Update overwrites the order's mutable fields. The status field is written
// as-is here; only the status endpoint validates it.
func (s *PurchaseOrderService) Update(ctx context.Context, id int64, req models.UpdatePurchaseOrderRequest, updatedBy int64) (models.PurchaseOrder, error) {
	var problems []string
	if strings.TrimSpace(req.RequesterName) == "" {
		problems = append(problems, "requester_name is required")
	}
	if strings.TrimSpace(req.AssetName) == "" {
		problems = append(problems, "asset_name is required")
	}
	if req.Quantity <= 0 {
		problems = append(problems, "quantity must be positive")
	}
	if len(problems) > 0 {
		return models.PurchaseOrder{}, Invalid("Validation failed", problems...)
	}

	if err := s.requireActingUser(ctx, updatedBy); err != nil {
		return models.PurchaseOrder{}, err
	}

	po, err := s.Orders.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.PurchaseOrder{}, NotFound("Purchase order not found")
	}
	if err != nil {
		return models.PurchaseOrder{}, err
	}

	po.RequesterName = strings.TrimSpace(req.RequesterName)
	po.ProcessName = req.ProcessName
	po.Category = req.Category
	po.ITCategory = req.ITCategory
	po.AssetName = strings.TrimSpace(req.AssetName)
	po.Location = req.Location
	po.Quantity = req.Quantity
	po.Status = req.Status
	po.UpdatedByID = &updatedBy

	po, err = s.Orders.Update(ctx, po)
	if errors.Is(err, store.ErrNotFound) {
		return models.PurchaseOrder{}, NotFound("Purchase order not found")
	}
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	log.Printf("purchaseorders: updated %d (%s)", po.ID, po.PRID)
	return po, nil
}

// UpdateStatus moves the order to a status from the fixed set.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, id int64, status string, updatedBy int64) (models.PurchaseOrder, error) {
	if !IsValidPurchaseOrderStatus(status) {
		return models.PurchaseOrder{}, Invalid("Invalid purchase order status")
	}

	po, err := s.Orders.UpdateStatus(ctx, id, status, &updatedBy)
	if errors.Is(err, store.ErrNotFound) {
		return models.PurchaseOrder{}, NotFound("Purchase order not found")
	}
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	log.Printf("purchaseorders: %d status -> %s", po.ID, po.Status)
	return po, nil
}

// Delete soft-deletes the order.
func (s *PurchaseOrderService) Delete(ctx context.Context, id int64) error {
	err := s.Orders.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NotFound("Purchase order not found")
	}
	if err != nil {
		return err
	}
	log.Printf("purchaseorders: deleted %d", id)
	return nil
}
