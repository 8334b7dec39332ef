package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// RoleStore persists roles.
type RoleStore struct {
	DB *sql.DB
}

func NewRoleStore(db *sql.DB) *RoleStore {
	return &RoleStore{DB: db}
}

const roleColumns = `
	r.id, r.name, r.description, r.is_active,
	(SELECT COUNT(*) FROM users u WHERE u.role_id = r.id),
	r.created_at, r.updated_at`

func scanRole(row interface{ Scan(...any) error }) (models.Role, error) {
	var r models.Role
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.IsActive, &r.UserCount,
		&r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *RoleStore) GetByID(ctx context.Context, id int64) (models.Role, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+roleColumns+` FROM roles r WHERE r.id = $1 AND r.is_active = true`, id)
	r, err := scanRole(row)
	if err == sql.ErrNoRows {
		return models.Role{}, ErrNotFound
	}
	return r, err
}

func (s *RoleStore) GetByName(ctx context.Context, name string) (models.Role, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+roleColumns+` FROM roles r WHERE lower(r.name) = lower($1)`, name)
	r, err := scanRole(row)
	if err == sql.ErrNoRows {
		return models.Role{}, ErrNotFound
	}
	return r, err
}

func (s *RoleStore) GetAll(ctx context.Context) ([]models.Role, error) {
	return s.list(ctx, `SELECT`+roleColumns+` FROM roles r ORDER BY r.id`)
}

func (s *RoleStore) GetActive(ctx context.Context) ([]models.Role, error) {
	return s.list(ctx, `SELECT`+roleColumns+` FROM roles r WHERE r.is_active = true ORDER BY r.id`)
}

func (s *RoleStore) list(ctx context.Context, query string) ([]models.Role, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

func (s *RoleStore) Exists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM roles WHERE lower(name) = lower($1) AND id <> $2
		)`, name, excludeID).Scan(&exists)
	return exists, err
}

func (s *RoleStore) Create(ctx context.Context, r models.Role) (models.Role, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO roles (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		r.Name, r.Description, r.IsActive).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *RoleStore) Update(ctx context.Context, r models.Role) (models.Role, error) {
	err := s.DB.QueryRowContext(ctx, `
		UPDATE roles
		SET name = $1, description = $2, is_active = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`,
		r.Name, r.Description, r.IsActive, r.ID).
		Scan(&r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Role{}, ErrNotFound
	}
	return r, err
}

// Delete soft-deletes the role. It fails with ErrHasDependents while any
// user still references the role.
func (s *RoleStore) Delete(ctx context.Context, id int64) error {
	var userCount int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role_id = $1`, id).Scan(&userCount)
	if err != nil {
		return err
	}
	if userCount > 0 {
		return ErrHasDependents
	}
	res, err := s.DB.ExecContext(ctx, `
		UPDATE roles SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
