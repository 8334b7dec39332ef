package models

import "time"

// PurchaseOrder is a procurement request tracked by PR id.
type PurchaseOrder struct {
	ID            int64     `json:"id"`
	PRID          string    `json:"pr_id"`
	RequesterName string    `json:"requester_name"`
	ProcessName   string    `json:"process_name"`
	Category      string    `json:"category"`
	ITCategory    *string   `json:"it_category,omitempty"`
	AssetName     string    `json:"asset_name"`
	Location      string    `json:"location"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	OrderDateTime time.Time `json:"order_date_time"`
	CreatedByID   int64     `json:"created_by_user_id"`
	UpdatedByID   *int64    `json:"updated_by_user_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePurchaseOrderRequest is the body for POST /api/purchaseorders.
type CreatePurchaseOrderRequest struct {
	PRID          string     `json:"pr_id"`
	RequesterName string     `json:"requester_name"`
	ProcessName   string     `json:"process_name"`
	Category      string     `json:"category"`
	ITCategory    *string    `json:"it_category,omitempty"`
	AssetName     string     `json:"asset_name"`
	Location      string     `json:"location"`
	Quantity      int        `json:"quantity"`
	Status        string     `json:"status,omitempty"`
	OrderDateTime *time.Time `json:"order_date_time,omitempty"`
}

// UpdatePurchaseOrderRequest is the body for PUT /api/purchaseorders/{id}.
type UpdatePurchaseOrderRequest struct {
	RequesterName string     `json:"requester_name"`
	ProcessName   string     `json:"process_name"`
	Category      string     `json:"category"`
	ITCategory    *string    `json:"it_category,omitempty"`
	AssetName     string     `json:"asset_name"`
	Location      string     `json:"location"`
	Quantity      int        `json:"quantity"`
	Status        string     `json:"status"`
	OrderDateTime *time.Time `json:"order_date_time,omitempty"`
}

// UpdatePurchaseOrderStatusRequest is the body for PATCH /api/purchaseorders/{id}/status.
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status"`
}
