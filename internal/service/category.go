package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetActive(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, c models.Category) (models.Category, error)
	Update(ctx context.Context, c models.Category) (models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryService struct {
	Categories CategoryRepository
}

func NewCategoryService(categories CategoryRepository) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (models.Category, error) {
	c, err := s.Categories.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Category{}, NotFound("Category not found")
	}
	return c, err
}

func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.Categories.GetAll(ctx)
}

func (s *CategoryService) GetActive(ctx context.Context) ([]models.Category, error) {
	return s.Categories.GetActive(ctx)
}

func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Category{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Categories.Exists(ctx, name, 0)
	if err != nil {
		return models.Category{}, err
	}
	if taken {
		return models.Category{}, Invalid("Category with this name already exists")
	}

	c, err := s.Categories.Create(ctx, models.Category{
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.Category{}, Invalid("Category with this name already exists")
		}
		return models.Category{}, err
	}
	log.Printf("categories: created %d (%s)", c.ID, c.Name)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, req models.CreateCategoryRequest) (models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Category{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Categories.Exists(ctx, name, id)
	if err != nil {
		return models.Category{}, err
	}
	if taken {
		return models.Category{}, Invalid("Category with this name already exists")
	}

	c, err := s.Categories.Update(ctx, models.Category{
		ID:          id,
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Category{}, NotFound("Category not found")
	}
	if err != nil {
		return models.Category{}, err
	}
	log.Printf("categories: updated %d (%s)", c.ID, c.Name)
	return c, nil
}

// Delete soft-deletes a category unless active assets still reference it.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	err := s.Categories.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("Category not found")
	case errors.Is(err, store.ErrHasDependents):
		return Invalid("Cannot delete category that is referenced by assets")
	case err != nil:
		return err
	}
	log.Printf("categories: deleted %d", id)
	return nil
}
