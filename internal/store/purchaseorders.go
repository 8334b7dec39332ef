package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"asset-management-api/internal/models"
)

// PurchaseOrderStore persists purchase orders.
type PurchaseOrderStore struct {
	DB *sql.DB
}

func NewPurchaseOrderStore(db *sql.DB) *PurchaseOrderStore {
	return &PurchaseOrderStore{DB: db}
}

const purchaseOrderColumns = `
	id, pr_id, requester_name, process_name, category, it_category,
	asset_name, location, quantity, status, order_date_time,
	created_by_user_id, updated_by_user_id, is_active, created_at, updated_at`

func scanPurchaseOrder(row interface{ Scan(...any) error }) (models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.PRID, &po.RequesterName, &po.ProcessName, &po.Category, &po.ITCategory,
		&po.AssetName, &po.Location, &po.Quantity, &po.Status, &po.OrderDateTime,
		&po.CreatedByID, &po.UpdatedByID, &po.IsActive, &po.CreatedAt, &po.UpdatedAt,
	)
	return po, err
}

func (s *PurchaseOrderStore) GetByID(ctx context.Context, id int64) (models.PurchaseOrder, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1 AND is_active = true`, id)
	po, err := scanPurchaseOrder(row)
	if err == sql.ErrNoRows {
		return models.PurchaseOrder{}, ErrNotFound
	}
	return po, err
}

func (s *PurchaseOrderStore) GetAll(ctx context.Context) ([]models.PurchaseOrder, error) {
	return s.list(ctx,
		`SELECT`+purchaseOrderColumns+` FROM purchase_orders WHERE is_active = true ORDER BY id`)
}

func (s *PurchaseOrderStore) GetByStatus(ctx context.Context, status string) ([]models.PurchaseOrder, error) {
	return s.list(ctx, `
		SELECT`+purchaseOrderColumns+` FROM purchase_orders
		WHERE status = $1 AND is_active = true ORDER BY id`, status)
}

// GetByStatuses returns orders whose status is in the given set.
func (s *PurchaseOrderStore) GetByStatuses(ctx context.Context, statuses []string) ([]models.PurchaseOrder, error) {
	return s.list(ctx, `
		SELECT`+purchaseOrderColumns+` FROM purchase_orders
		WHERE status = ANY($1) AND is_active = true ORDER BY id`, pq.Array(statuses))
}

func (s *PurchaseOrderStore) GetByRequester(ctx context.Context, requester string) ([]models.PurchaseOrder, error) {
	return s.list(ctx, `
		SELECT`+purchaseOrderColumns+` FROM purchase_orders
		WHERE lower(requester_name) = lower($1) AND is_active = true ORDER BY id`, requester)
}

func (s *PurchaseOrderStore) GetByCategory(ctx context.Context, category string) ([]models.PurchaseOrder, error) {
	return s.list(ctx, `
		SELECT`+purchaseOrderColumns+` FROM purchase_orders
		WHERE lower(category) = lower($1) AND is_active = true ORDER BY id`, category)
}

func (s *PurchaseOrderStore) GetByLocation(ctx context.Context, location string) ([]models.PurchaseOrder, error) {
	return s.list(ctx, `
		SELECT`+purchaseOrderColumns+` FROM purchase_orders
		WHERE lower(location) = lower($1) AND is_active = true ORDER BY id`, location)
}

func (s *PurchaseOrderStore) GetByDateRange(ctx context.Context, from, to time.Time) ([]models.PurchaseOrder, error) {
	return s.list(ctx, `
		SELECT`+purchaseOrderColumns+` FROM purchase_orders
		WHERE order_date_time >= $1 AND order_date_time <= $2 AND is_active = true
		ORDER BY order_date_time`, from, to)
}

func (s *PurchaseOrderStore) list(ctx context.Context, query string, args ...any) ([]models.PurchaseOrder, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

// PRIDExists checks the PR id among active orders.
func (s *PurchaseOrderStore) PRIDExists(ctx context.Context, prID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM purchase_orders WHERE pr_id = $1 AND is_active = true
		)`, prID).Scan(&exists)
	return exists, err
}

func (s *PurchaseOrderStore) Create(ctx context.Context, po models.PurchaseOrder) (models.PurchaseOrder, error) {
	row := s.DB.QueryRowContext(ctx, `
		INSERT INTO purchase_orders (pr_id, requester_name, process_name, category,
			it_category, asset_name, location, quantity, status, order_date_time,
			created_by_user_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING`+purchaseOrderColumns,
		po.PRID, po.RequesterName, po.ProcessName, po.Category,
		po.ITCategory, po.AssetName, po.Location, po.Quantity, po.Status, po.OrderDateTime,
		po.CreatedByID, po.IsActive)
	return scanPurchaseOrder(row)
}

func (s *PurchaseOrderStore) Update(ctx context.Context, po models.PurchaseOrder) (models.PurchaseOrder, error) {
	row := s.DB.QueryRowContext(ctx, `
		UPDATE purchase_orders
		SET requester_name = $1, process_name = $2, category = $3, it_category = $4,
		    asset_name = $5, location = $6, quantity = $7, status = $8,
		    updated_by_user_id = $9, updated_at = now()
		WHERE id = $10 AND is_active = true
		RETURNING`+purchaseOrderColumns,
		po.RequesterName, po.ProcessName, po.Category, po.ITCategory,
		po.AssetName, po.Location, po.Quantity, po.Status,
		po.UpdatedByID, po.ID)
	out, err := scanPurchaseOrder(row)
	if err == sql.ErrNoRows {
		return models.PurchaseOrder{}, ErrNotFound
	}
	return out, err
}

func (s *PurchaseOrderStore) UpdateStatus(ctx context.Context, id int64, status string, updatedBy *int64) (models.PurchaseOrder, error) {
	row := s.DB.QueryRowContext(ctx, `
		UPDATE purchase_orders
		SET status = $1, updated_by_user_id = $2, updated_at = now()
		WHERE id = $3 AND is_active = true
		RETURNING`+purchaseOrderColumns,
		status, updatedBy, id)
	out, err := scanPurchaseOrder(row)
	if err == sql.ErrNoRows {
		return models.PurchaseOrder{}, ErrNotFound
	}
	return out, err
}

// Delete soft-deletes the order.
func (s *PurchaseOrderStore) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE purchase_orders SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
