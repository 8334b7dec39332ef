package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type BrandRepository interface {
	GetByID(ctx context.Context, id int64) (models.Brand, error)
	GetAll(ctx context.Context) ([]models.Brand, error)
	GetActive(ctx context.Context) ([]models.Brand, error)
	Exists(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, b models.Brand) (models.Brand, error)
	Update(ctx context.Context, b models.Brand) (models.Brand, error)
	Delete(ctx context.Context, id int64) error
}

type BrandService struct {
	Brands BrandRepository
}

func NewBrandService(brands BrandRepository) *BrandService {
	return &BrandService{Brands: brands}
}

func (s *BrandService) GetByID(ctx context.Context, id int64) (models.Brand, error) {
	b, err := s.Brands.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Brand{}, NotFound("Brand not found")
	}
	return b, err
}

func (s *BrandService) GetAll(ctx context.Context) ([]models.Brand, error) {
	return s.Brands.GetAll(ctx)
}

func (s *BrandService) GetActive(ctx context.Context) ([]models.Brand, error) {
	return s.Brands.GetActive(ctx)
}

func (s *BrandService) Create(ctx context.Context, req models.CreateBrandRequest) (models.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Brand{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Brands.Exists(ctx, name, 0)
	if err != nil {
		return models.Brand{}, err
	}
	if taken {
		return models.Brand{}, Invalid("Brand with this name already exists")
	}

	b, err := s.Brands.Create(ctx, models.Brand{
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.Brand{}, Invalid("Brand with this name already exists")
		}
		return models.Brand{}, err
	}
	log.Printf("brands: created %d (%s)", b.ID, b.Name)
	return b, nil
}

func (s *BrandService) Update(ctx context.Context, id int64, req models.CreateBrandRequest) (models.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Brand{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Brands.Exists(ctx, name, id)
	if err != nil {
		return models.Brand{}, err
	}
	if taken {
		return models.Brand{}, Invalid("Brand with this name already exists")
	}

	b, err := s.Brands.Update(ctx, models.Brand{
		ID:          id,
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Brand{}, NotFound("Brand not found")
	}
	if err != nil {
		return models.Brand{}, err
	}
	log.Printf("brands: updated %d (%s)", b.ID, b.Name)
	return b, nil
}

func (s *BrandService) Delete(ctx context.Context, id int64) error {
	err := s.Brands.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("Brand not found")
	case errors.Is(err, store.ErrHasDependents):
		return Invalid("Cannot delete brand that is referenced by assets")
	case err != nil:
		return err
	}
	log.Printf("brands: deleted %d", id)
	return nil
}
