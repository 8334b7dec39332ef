package models

import "time"

// Asset statuses. Available and Assigned are the only states with a guarded
// transition (assign/unassign); the rest are set directly on update.
const (
	AssetStatusAvailable        = "Available"
	AssetStatusAssigned         = "Assigned"
	AssetStatusUnderMaintenance = "Under Maintenance"
	AssetStatusRetired          = "Retired"
	AssetStatusLost             = "Lost"
	AssetStatusDamaged          = "Damaged"
)

// AssetStatuses lists every valid asset status.
var AssetStatuses = []string{
	AssetStatusAvailable,
	AssetStatusAssigned,
	AssetStatusUnderMaintenance,
	AssetStatusRetired,
	AssetStatusLost,
	AssetStatusDamaged,
}

// IsValidAssetStatus reports whether s is a known asset status.
func IsValidAssetStatus(s string) bool {
	for _, v := range AssetStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Asset is a tracked piece of equipment.
type Asset struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	SerialNumber   string  `json:"serial_number"`
	Remarks        *string `json:"remarks,omitempty"`
	CategoryID     *int64  `json:"category_id,omitempty"`
	BrandID        *int64  `json:"brand_id,omitempty"`
	LocationID     *int64  `json:"location_id,omitempty"`
	CategoryName   *string `json:"category_name,omitempty"`
	BrandName      *string `json:"brand_name,omitempty"`
	LocationName   *string `json:"location_name,omitempty"`
	CreatedByID    int64   `json:"created_by_user_id"`
	AssignedToID   *int64  `json:"assigned_to_user_id,omitempty"`
	AssignedToName *string `json:"assigned_to_name,omitempty"`
	Status         string  `json:"status"`
	// Hardware profile carried over from the deprecated denormalized register.
	RAM       *string   `json:"ram,omitempty"`
	Storage   *string   `json:"storage,omitempty"`
	Processor *string   `json:"processor,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterAssetRequest is the body for POST /api/assets/register.
type RegisterAssetRequest struct {
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	Remarks      *string `json:"remarks,omitempty"`
	CategoryID   int64   `json:"category_id"`
	BrandID      int64   `json:"brand_id"`
	LocationID   int64   `json:"location_id"`
	RAM          *string `json:"ram,omitempty"`
	Storage      *string `json:"storage,omitempty"`
	Processor    *string `json:"processor,omitempty"`
}

// UpdateAssetRequest is the body for PUT /api/assets/{id}. All mutable
// fields are overwritten; there is no partial patch.
type UpdateAssetRequest struct {
	Name       string  `json:"name"`
	Remarks    *string `json:"remarks,omitempty"`
	CategoryID int64   `json:"category_id"`
	BrandID    int64   `json:"brand_id"`
	LocationID int64   `json:"location_id"`
	Status     string  `json:"status"`
	RAM        *string `json:"ram,omitempty"`
	Storage    *string `json:"storage,omitempty"`
	Processor  *string `json:"processor,omitempty"`
}

// AssignAssetRequest is the body for POST /api/assets/{id}/assign.
type AssignAssetRequest struct {
	UserID  int64  `json:"user_id"`
	Remarks string `json:"remarks,omitempty"`
}

// AssetRegistrationOptions feeds the registration form dropdowns.
type AssetRegistrationOptions struct {
	Categories []Category `json:"categories"`
	Brands     []Brand    `json:"brands"`
	Locations  []Location `json:"locations"`
	Statuses   []string   `json:"statuses"`
}
