package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (models.Location, error)
	GetAll(ctx context.Context) ([]models.Location, error)
	GetActive(ctx context.Context) ([]models.Location, error)
	Exists(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, l models.Location) (models.Location, error)
	Update(ctx context.Context, l models.Location) (models.Location, error)
	Delete(ctx context.Context, id int64) error
}

type LocationService struct {
	Locations LocationRepository
}

func NewLocationService(locations LocationRepository) *LocationService {
	return &LocationService{Locations: locations}
}

func (s *LocationService) GetByID(ctx context.Context, id int64) (models.Location, error) {
	l, err := s.Locations.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Location{}, NotFound("Location not found")
	}
	return l, err
}

func (s *LocationService) GetAll(ctx context.Context) ([]models.Location, error) {
	return s.Locations.GetAll(ctx)
}

func (s *LocationService) GetActive(ctx context.Context) ([]models.Location, error) {
	return s.Locations.GetActive(ctx)
}

func (s *LocationService) Create(ctx context.Context, req models.CreateLocationRequest) (models.Location, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Location{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Locations.Exists(ctx, name, 0)
	if err != nil {
		return models.Location{}, err
	}
	if taken {
		return models.Location{}, Invalid("Location with this name already exists")
	}

	l, err := s.Locations.Create(ctx, models.Location{
		Name:       name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsActive:   req.IsActive,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.Location{}, Invalid("Location with this name already exists")
		}
		return models.Location{}, err
	}
	log.Printf("locations: created %d (%s)", l.ID, l.Name)
	return l, nil
}

func (s *LocationService) Update(ctx context.Context, id int64, req models.CreateLocationRequest) (models.Location, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Location{}, Invalid("Validation failed", "name is required")
	}

	taken, err := s.Locations.Exists(ctx, name, id)
	if err != nil {
		return models.Location{}, err
	}
	if taken {
		return models.Location{}, Invalid("Location with this name already exists")
	}

	l, err := s.Locations.Update(ctx, models.Location{
		ID:         id,
		Name:       name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsActive:   req.IsActive,
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Location{}, NotFound("Location not found")
	}
	if err != nil {
		return models.Location{}, err
	}
	log.Printf("locations: updated %d (%s)", l.ID, l.Name)
	return l, nil
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	err := s.Locations.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound("Location not found")
	case errors.Is(err, store.ErrHasDependents):
		return Invalid("Cannot delete location that is referenced by assets")
	case err != nil:
		return err
	}
	log.Printf("locations: deleted %d", id)
	return nil
}
