package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// AssetStore persists assets.
type AssetStore struct {
	DB *sql.DB
}

func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{DB: db}
}

const assetColumns = `
	a.id, a.name, a.serial_number, a.remarks,
	a.category_id, a.brand_id, a.location_id,
	c.name, b.name, l.name,
	a.created_by_user_id, a.assigned_to_user_id, au.full_name,
	a.status, a.ram, a.storage, a.processor,
	a.is_active, a.created_at, a.updated_at`

const assetJoins = `
	FROM assets a
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN brands b ON b.id = a.brand_id
	LEFT JOIN locations l ON l.id = a.location_id
	LEFT JOIN users au ON au.id = a.assigned_to_user_id`

func scanAsset(row interface{ Scan(...any) error }) (models.Asset, error) {
	var a models.Asset
	err := row.Scan(
		&a.ID, &a.Name, &a.SerialNumber, &a.Remarks,
		&a.CategoryID, &a.BrandID, &a.LocationID,
		&a.CategoryName, &a.BrandName, &a.LocationName,
		&a.CreatedByID, &a.AssignedToID, &a.AssignedToName,
		&a.Status, &a.RAM, &a.Storage, &a.Processor,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (s *AssetStore) GetByID(ctx context.Context, id int64) (models.Asset, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+assetColumns+assetJoins+` WHERE a.id = $1 AND a.is_active = true`, id)
	a, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return models.Asset{}, ErrNotFound
	}
	return a, err
}

func (s *AssetStore) GetBySerialNumber(ctx context.Context, serial string) (models.Asset, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+assetColumns+assetJoins+` WHERE a.serial_number = $1 AND a.is_active = true`, serial)
	a, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return models.Asset{}, ErrNotFound
	}
	return a, err
}

func (s *AssetStore) GetAll(ctx context.Context) ([]models.Asset, error) {
	return s.list(ctx, `SELECT`+assetColumns+assetJoins+` WHERE a.is_active = true ORDER BY a.id`)
}

func (s *AssetStore) GetByUserID(ctx context.Context, userID int64) ([]models.Asset, error) {
	return s.list(ctx, `
		SELECT`+assetColumns+assetJoins+`
		WHERE a.assigned_to_user_id = $1 AND a.is_active = true ORDER BY a.id`, userID)
}

func (s *AssetStore) GetByCategoryID(ctx context.Context, categoryID int64) ([]models.Asset, error) {
	return s.list(ctx, `
		SELECT`+assetColumns+assetJoins+`
		WHERE a.category_id = $1 AND a.is_active = true ORDER BY a.id`, categoryID)
}

func (s *AssetStore) GetByLocationID(ctx context.Context, locationID int64) ([]models.Asset, error) {
	return s.list(ctx, `
		SELECT`+assetColumns+assetJoins+`
		WHERE a.location_id = $1 AND a.is_active = true ORDER BY a.id`, locationID)
}

func (s *AssetStore) GetByStatus(ctx context.Context, status string) ([]models.Asset, error) {
	return s.list(ctx, `
		SELECT`+assetColumns+assetJoins+`
		WHERE a.status = $1 AND a.is_active = true ORDER BY a.id`, status)
}

func (s *AssetStore) list(ctx context.Context, query string, args ...any) ([]models.Asset, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// SerialNumberExists checks the serial among active assets.
func (s *AssetStore) SerialNumberExists(ctx context.Context, serial string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM assets WHERE serial_number = $1 AND is_active = true
		)`, serial).Scan(&exists)
	return exists, err
}

func (s *AssetStore) Create(ctx context.Context, a models.Asset) (models.Asset, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO assets (name, serial_number, remarks, category_id, brand_id,
			location_id, created_by_user_id, status, ram, storage, processor, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		a.Name, a.SerialNumber, a.Remarks, a.CategoryID, a.BrandID,
		a.LocationID, a.CreatedByID, a.Status, a.RAM, a.Storage, a.Processor, a.IsActive).
		Scan(&a.ID)
	if err != nil {
		return models.Asset{}, err
	}
	return s.GetByID(ctx, a.ID)
}

func (s *AssetStore) Update(ctx context.Context, a models.Asset) (models.Asset, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE assets
		SET name = $1, remarks = $2, category_id = $3, brand_id = $4,
		    location_id = $5, assigned_to_user_id = $6, status = $7,
		    ram = $8, storage = $9, processor = $10, updated_at = now()
		WHERE id = $11 AND is_active = true`,
		a.Name, a.Remarks, a.CategoryID, a.BrandID,
		a.LocationID, a.AssignedToID, a.Status,
		a.RAM, a.Storage, a.Processor, a.ID)
	if err != nil {
		return models.Asset{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Asset{}, ErrNotFound
	}
	return s.GetByID(ctx, a.ID)
}

// Delete soft-deletes the asset.
func (s *AssetStore) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE assets SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
