package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// LocationStore persists asset locations.
type LocationStore struct {
	DB *sql.DB
}

func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{DB: db}
}

const locationColumns = `
	id, name, address, city, state, postal_code, country,
	is_active, created_at, updated_at`

func scanLocation(row interface{ Scan(...any) error }) (models.Location, error) {
	var l models.Location
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.State, &l.PostalCode,
		&l.Country, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (s *LocationStore) GetByID(ctx context.Context, id int64) (models.Location, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+locationColumns+` FROM locations WHERE id = $1 AND is_active = true`, id)
	l, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return models.Location{}, ErrNotFound
	}
	return l, err
}

func (s *LocationStore) GetAll(ctx context.Context) ([]models.Location, error) {
	return s.list(ctx, `SELECT`+locationColumns+` FROM locations ORDER BY id`)
}

func (s *LocationStore) GetActive(ctx context.Context) ([]models.Location, error) {
	return s.list(ctx, `SELECT`+locationColumns+` FROM locations WHERE is_active = true ORDER BY id`)
}

func (s *LocationStore) list(ctx context.Context, query string) ([]models.Location, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (s *LocationStore) Exists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM locations WHERE lower(name) = lower($1) AND id <> $2
		)`, name, excludeID).Scan(&exists)
	return exists, err
}

func (s *LocationStore) Create(ctx context.Context, l models.Location) (models.Location, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO locations (name, address, city, state, postal_code, country, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		l.Name, l.Address, l.City, l.State, l.PostalCode, l.Country, l.IsActive).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (s *LocationStore) Update(ctx context.Context, l models.Location) (models.Location, error) {
	err := s.DB.QueryRowContext(ctx, `
		UPDATE locations
		SET name = $1, address = $2, city = $3, state = $4, postal_code = $5,
		    country = $6, is_active = $7, updated_at = now()
		WHERE id = $8
		RETURNING created_at, updated_at`,
		l.Name, l.Address, l.City, l.State, l.PostalCode, l.Country, l.IsActive, l.ID).
		Scan(&l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Location{}, ErrNotFound
	}
	return l, err
}

// Delete soft-deletes the location; blocked while active assets reference it.
func (s *LocationStore) Delete(ctx context.Context, id int64) error {
	var assetCount int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM assets
		WHERE location_id = $1 AND is_active = true`, id).Scan(&assetCount)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return ErrHasDependents
	}
	res, err := s.DB.ExecContext(ctx, `
		UPDATE locations SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
