package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (models.Role, error)
	GetByName(ctx context.Context, name string) (models.Role, error)
	GetAll(ctx context.Context) ([]models.Role, error)
	GetActive(ctx context.Context) ([]models.Role, error)
	Exists(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, r models.Role) (models.Role, error)
	Update(ctx context.Context, r models.Role) (models.Role, error)
	Delete(ctx context.Context, id int64) error
}

type RoleService struct {
	Roles RoleRepository
}

func NewRoleService(roles RoleRepository) *RoleService {
	return &RoleService{Roles: roles}
}

func (s *RoleService) GetByID(ctx context.Context, id int64) (models.Role, error) {
	r, err := s.Roles.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Role{}, NotFound("Role not found")
	}
	return r, err
}

func (s *RoleService) GetByName(ctx context.Context, name string) (models.Role, error) {
	r, err := s.Roles.GetByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return models.Role{}, NotFound("Role not found")
	}
	return r, err
}

func (s *RoleService) GetAll(ctx context.Context) ([]models.Role, error) {
	return s.Roles.GetAll(ctx)
}

func (s *RoleService) GetActive(ctx context.Context) ([]models.Role, error) {
	return s.Roles.GetActive(ctx)
}

func (s *RoleService) Create(ctx context.Context, req models.CreateRoleRequest) (models.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Role{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Roles.Exists(ctx, name, 0)
	if err != nil {
		return models.Role{}, err
	}
	if taken {
		return models.Role{}, Invalid("Role with this name already exists")
	}

	r, err := s.Roles.Create(ctx, models.Role{
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.Role{}, Invalid("Role with this name already exists")
		}
		return models.Role{}, err
	}
	log.Printf("roles: created %d (%s)", r.ID, r.Name)
	return r, nil
}

func (s *RoleService) Update(ctx context.Context, id int64, req models.UpdateRoleRequest) (models.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Role{}, Invalid("Validation failed", "name is required")
	}

	if _, err := s.Roles.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Role{}, NotFound("Role not found")
		}
		return models.Role{}, err
	}

	taken, err := s.Roles.Exists(ctx, name, id)
	if err != nil {
		return models.Role{}, err
	}
	if taken {
		return models.Role{}, Invalid("Role with this name already exists")
	}

	r, err := s.Roles.Update(ctx, models.Role{
		ID:          id,
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Role{}, NotFound("Role not found")
	}
	if err != nil {
		return models.Role{}, err
	}
	log.Printf("roles: updated %d (%s)", r.ID, r.Name)
	return r, nil
}

// Delete soft-deletes a role unless users still reference it.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	err := s.Roles.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("Role not found")
	case errors.Is(err, store.ErrHasDependents):
		return Invalid("Cannot delete role that has users assigned to it")
	case err != nil:
		return err
	}
	log.Printf("roles: deleted %d", id)
	return nil
}
