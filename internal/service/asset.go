package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type AssetRepository interface {
	GetByID(ctx context.Context, id int64) (models.Asset, error)
	GetBySerialNumber(ctx context.Context, serial string) (models.Asset, error)
	GetAll(ctx context.Context) ([]models.Asset, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Asset, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]models.Asset, error)
	GetByLocationID(ctx context.Context, locationID int64) ([]models.Asset, error)
	GetByStatus(ctx context.Context, status string) ([]models.Asset, error)
	SerialNumberExists(ctx context.Context, serial string) (bool, error)
	Create(ctx context.Context, a models.Asset) (models.Asset, error)
	Update(ctx context.Context, a models.Asset) (models.Asset, error)
	Delete(ctx context.Context, id int64) error
}

// Lookup slices of the catalogue stores. GetByID on these only returns
// active rows, which is exactly the FK check asset writes need.
type CategoryLookup interface {
	GetByID(ctx context.Context, id int64) (models.Category, error)
	GetActive(ctx context.Context) ([]models.Category, error)
}

type BrandLookup interface {
	GetByID(ctx context.Context, id int64) (models.Brand, error)
	GetActive(ctx context.Context) ([]models.Brand, error)
}

type LocationLookup interface {
	GetByID(ctx context.Context, id int64) (models.Location, error)
	GetActive(ctx context.Context) ([]models.Location, error)
}

// UserLookup resolves assignment targets.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
}

type AssetService struct {
	Assets     AssetRepository
	Categories CategoryLookup
	Brands     BrandLookup
	Locations  LocationLookup
	Users      UserLookup
}

func NewAssetService(assets AssetRepository, categories CategoryLookup, brands BrandLookup, locations LocationLookup, users UserLookup) *AssetService {
	return &AssetService{
		Assets:     assets,
		Categories: categories,
		Brands:     brands,
		Locations:  locations,
		Users:      users,
	}
}

func (s *AssetService) checkReferences(ctx context.Context, categoryID, brandID, locationID int64) error {
	if _, err := s.Categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Invalid("Invalid category selected")
		}
		return err
	}
	if _, err := s.Brands.GetByID(ctx, brandID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Invalid("Invalid brand selected")
		}
		return err
	}
	if _, err := s.Locations.GetByID(ctx, locationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Invalid("Invalid location selected")
		}
		return err
	}
	return nil
}

// Register creates an asset in the Available state.
func (s *AssetService) Register(ctx context.Context, req models.RegisterAssetRequest, createdBy int64) (models.Asset, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name is required")
	}
	if strings.TrimSpace(req.SerialNumber) == "" {
		missing = append(missing, "serial_number is required")
	}
	if len(missing) > 0 {
		return models.Asset{}, Invalid("Validation failed", missing...)
	}

	serial := strings.TrimSpace(req.SerialNumber)
	taken, err := s.Assets.SerialNumberExists(ctx, serial)
	if err != nil {
		return models.Asset{}, err
	}
	if taken {
		return models.Asset{}, Invalid("Asset with this serial number already exists")
	}

	if err := s.checkReferences(ctx, req.CategoryID, req.BrandID, req.LocationID); err != nil {
		return models.Asset{}, err
	}

	a, err := s.Assets.Create(ctx, models.Asset{
		Name:         strings.TrimSpace(req.Name),
		SerialNumber: serial,
		Remarks:      req.Remarks,
		CategoryID:   &req.CategoryID,
		BrandID:      &req.BrandID,
		LocationID:   &req.LocationID,
		CreatedByID:  createdBy,
		Status:       models.AssetStatusAvailable,
		RAM:          req.RAM,
		Storage:      req.Storage,
		Processor:    req.Processor,
		IsActive:     true,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.Asset{}, Invalid("Asset with this serial number already exists")
		}
		return models.Asset{}, err
	}
	log.Printf("assets: registered %d (%s)", a.ID, a.SerialNumber)
	return a, nil
}

func (s *AssetService) GetByID(ctx context.Context, id int64) (models.Asset, error) {
	a, err := s.Assets.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, NotFound("Asset not found")
	}
	return a, err
}

func (s *AssetService) GetBySerialNumber(ctx context.Context, serial string) (models.Asset, error) {
	a, err := s.Assets.GetBySerialNumber(ctx, strings.TrimSpace(serial))
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, NotFound("Asset not found")
	}
	return a, err
}

func (s *AssetService) GetAll(ctx context.Context) ([]models.Asset, error) {
	return s.Assets.GetAll(ctx)
}

func (s *AssetService) GetByUserID(ctx context.Context, userID int64) ([]models.Asset, error) {
	return s.Assets.GetByUserID(ctx, userID)
}

func (s *AssetService) GetByCategoryID(ctx context.Context, categoryID int64) ([]models.Asset, error) {
	return s.Assets.GetByCategoryID(ctx, categoryID)
}

func (s *AssetService) GetByLocationID(ctx context.Context, locationID int64) ([]models.Asset, error) {
	return s.Assets.GetByLocationID(ctx, locationID)
}

func (s *AssetService) GetByStatus(ctx context.Context, status string) ([]models.Asset, error) {
	if !models.IsValidAssetStatus(status) {
		return nil, Invalid("Invalid asset status")
	}
	return s.Assets.GetByStatus(ctx, status)
}

// Update overwrites the asset's mutable fields. Assignment is not touched
// here; use Assign/Unassign for that.
func (s *AssetService) Update(ctx context.Context, id int64, req models.UpdateAssetRequest) (models.Asset, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Asset{}, Invalid("Validation failed", "name is required")
	}
	if !models.IsValidAssetStatus(req.Status) {
		return models.Asset{}, Invalid("Invalid asset status")
	}

	a, err := s.Assets.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, NotFound("Asset not found")
	}
	if err != nil {
		return models.Asset{}, err
	}

	if err := s.checkReferences(ctx, req.CategoryID, req.BrandID, req.LocationID); err != nil {
		return models.Asset{}, err
	}

	a.Name = strings.TrimSpace(req.Name)
	a.Remarks = req.Remarks
	a.CategoryID = &req.CategoryID
	a.BrandID = &req.BrandID
	a.LocationID = &req.LocationID
	a.Status = req.Status
	a.RAM = req.RAM
	a.Storage = req.Storage
	a.Processor = req.Processor

	a, err = s.Assets.Update(ctx, a)
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, NotFound("Asset not found")
	}
	if err != nil {
		return models.Asset{}, err
	}
	log.Printf("assets: updated %d (%s)", a.ID, a.SerialNumber)
	return a, nil
}

// Assign hands an Available asset to an active user and records the handover
// in the remarks trail.
func (s *AssetService) Assign(ctx context.Context, id int64, req models.AssignAssetRequest) (models.Asset, error) {
	a, err := s.Assets.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, NotFound("Asset not found")
	}
	if err != nil {
		return models.Asset{}, err
	}

	if a.Status != models.AssetStatusAvailable {
		return models.Asset{}, Invalid("Asset is not available for assignment")
	}

	u, err := s.Users.GetByID(ctx, req.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, Invalid("Invalid or inactive user")
	}
	if err != nil {
		return models.Asset{}, err
	}
	if !u.IsActive {
		return models.Asset{}, Invalid("Invalid or inactive user")
	}

	note := "[Assignment] " + req.Remarks
	if a.Remarks != nil && *a.Remarks != "" {
		note = *a.Remarks + "\n" + note
	}
	a.Remarks = &note
	a.AssignedToID = &u.ID
	a.Status = models.AssetStatusAssigned

	a, err = s.Assets.Update(ctx, a)
	if err != nil {
		return models.Asset{}, err
	}
	log.Printf("assets: assigned %d to user %d", a.ID, u.ID)
	return a, nil
}

// Unassign returns an Assigned asset to the Available pool.
func (s *AssetService) Unassign(ctx context.Context, id int64) (models.Asset, error) {
	a, err := s.Assets.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Asset{}, NotFound("Asset not found")
	}
	if err != nil {
		return models.Asset{}, err
	}

	if a.Status != models.AssetStatusAssigned {
		return models.Asset{}, Invalid("Asset is not currently assigned")
	}

	a.AssignedToID = nil
	a.Status = models.AssetStatusAvailable

	a, err = s.Assets.Update(ctx, a)
	if err != nil {
		return models.Asset{}, err
	}
	log.Printf("assets: unassigned %d", a.ID)
	return a, nil
}

// Delete soft-deletes the asset.
func (s *AssetService) Delete(ctx context.Context, id int64) error {
	err := s.Assets.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NotFound("Asset not found")
	}
	if err != nil {
		return err
	}
	log.Printf("assets: deleted %d", id)
	return nil
}

// RegistrationOptions returns the dropdown data for the asset form.
func (s *AssetService) RegistrationOptions(ctx context.Context) (models.AssetRegistrationOptions, error) {
	categories, err := s.Categories.GetActive(ctx)
	if err != nil {
		return models.AssetRegistrationOptions{}, err
	}
	brands, err := s.Brands.GetActive(ctx)
	if err != nil {
		return models.AssetRegistrationOptions{}, err
	}
	locations, err := s.Locations.GetActive(ctx)
	if err != nil {
		return models.AssetRegistrationOptions{}, err
	}
	return models.AssetRegistrationOptions{
		Categories: categories,
		Brands:     brands,
		Locations:  locations,
		Statuses:   models.AssetStatuses,
	}, nil
}
