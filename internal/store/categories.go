package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// CategoryStore persists asset categories.
type CategoryStore struct {
	DB *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{DB: db}
}

func scanCategory(row interface{ Scan(...any) error }) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *CategoryStore) GetByID(ctx context.Context, id int64) (models.Category, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories WHERE id = $1 AND is_active = true`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return models.Category{}, ErrNotFound
	}
	return c, err
}

func (s *CategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.list(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories ORDER BY id`)
}

func (s *CategoryStore) GetActive(ctx context.Context) ([]models.Category, error) {
	return s.list(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories WHERE is_active = true ORDER BY id`)
}

func (s *CategoryStore) list(ctx context.Context, query string) ([]models.Category, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *CategoryStore) Exists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE lower(name) = lower($1) AND id <> $2
		)`, name, excludeID).Scan(&exists)
	return exists, err
}

func (s *CategoryStore) Create(ctx context.Context, c models.Category) (models.Category, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Description, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *CategoryStore) Update(ctx context.Context, c models.Category) (models.Category, error) {
	err := s.DB.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, description = $2, is_active = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`,
		c.Name, c.Description, c.IsActive, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Category{}, ErrNotFound
	}
	return c, err
}

// Delete soft-deletes the category; blocked while active assets reference it.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	var assetCount int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM assets
		WHERE category_id = $1 AND is_active = true`, id).Scan(&assetCount)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return ErrHasDependents
	}
	res, err := s.DB.ExecContext(ctx, `
		UPDATE categories SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
