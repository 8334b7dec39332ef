package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// UserStore persists users.
type UserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{DB: db}
}

const userColumns = `
	u.id, u.full_name, u.email, u.employment_id, u.mobile_number,
	u.password_hash, u.department, u.sub_department, u.role_id, r.name,
	u.is_active, u.created_at, u.updated_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.EmploymentID, &u.MobileNumber,
		&u.PasswordHash, &u.Department, &u.SubDepartment, &u.RoleID, &u.RoleName,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (models.User, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT`+userColumns+`
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT`+userColumns+`
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE lower(u.email) = lower($1)`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *UserStore) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT`+userColumns+`
		FROM users u JOIN roles r ON r.id = u.role_id
		ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Exists reports whether any user carries the email or employment id.
func (s *UserStore) Exists(ctx context.Context, email, employmentID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE lower(email) = lower($1) OR employment_id = $2
		)`, email, employmentID).Scan(&exists)
	return exists, err
}

// ExistsID reports whether the user id exists and is active.
func (s *UserStore) ExistsID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND is_active = true)`, id).
		Scan(&exists)
	return exists, err
}

func (s *UserStore) Create(ctx context.Context, u models.User) (models.User, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO users (full_name, email, employment_id, mobile_number,
			password_hash, department, sub_department, role_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		u.FullName, u.Email, u.EmploymentID, u.MobileNumber,
		u.PasswordHash, u.Department, u.SubDepartment, u.RoleID, u.IsActive).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	return s.GetByID(ctx, u.ID)
}

// UpdatePassword replaces the stored hash.
func (s *UserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user row entirely.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
