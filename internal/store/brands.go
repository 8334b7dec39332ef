package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// BrandStore persists asset brands.
type BrandStore struct {
	DB *sql.DB
}

func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{DB: db}
}

func scanBrand(row interface{ Scan(...any) error }) (models.Brand, error) {
	var b models.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (s *BrandStore) GetByID(ctx context.Context, id int64) (models.Brand, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM brands WHERE id = $1 AND is_active = true`, id)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return models.Brand{}, ErrNotFound
	}
	return b, err
}

func (s *BrandStore) GetAll(ctx context.Context) ([]models.Brand, error) {
	return s.list(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM brands ORDER BY id`)
}

func (s *BrandStore) GetActive(ctx context.Context) ([]models.Brand, error) {
	return s.list(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM brands WHERE is_active = true ORDER BY id`)
}

func (s *BrandStore) list(ctx context.Context, query string) ([]models.Brand, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (s *BrandStore) Exists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM brands WHERE lower(name) = lower($1) AND id <> $2
		)`, name, excludeID).Scan(&exists)
	return exists, err
}

func (s *BrandStore) Create(ctx context.Context, b models.Brand) (models.Brand, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO brands (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		b.Name, b.Description, b.IsActive).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (s *BrandStore) Update(ctx context.Context, b models.Brand) (models.Brand, error) {
	err := s.DB.QueryRowContext(ctx, `
		UPDATE brands
		SET name = $1, description = $2, is_active = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`,
		b.Name, b.Description, b.IsActive, b.ID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Brand{}, ErrNotFound
	}
	return b, err
}

// Delete soft-deletes the brand; blocked while active assets reference it.
func (s *BrandStore) Delete(ctx context.Context, id int64) error {
	var assetCount int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM assets
		WHERE brand_id = $1 AND is_active = true`, id).Scan(&assetCount)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return ErrHasDependents
	}
	res, err := s.DB.ExecContext(ctx, `
		UPDATE brands SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
