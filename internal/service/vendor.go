package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

type VendorRepository interface {
	GetByID(ctx context.Context, id int64) (models.Vendor, error)
	GetAll(ctx context.Context) ([]models.Vendor, error)
	GSTExists(ctx context.Context, gst string, excludeID int64) (bool, error)
	PANExists(ctx context.Context, pan string, excludeID int64) (bool, error)
	Create(ctx context.Context, v models.Vendor) (models.Vendor, error)
	Update(ctx context.Context, v models.Vendor) (models.Vendor, error)
	Delete(ctx context.Context, id int64) error
}

type VendorService struct {
	Vendors VendorRepository
}

func NewVendorService(vendors VendorRepository) *VendorService {
	return &VendorService{Vendors: vendors}
}

func (s *VendorService) GetByID(ctx context.Context, id int64) (models.Vendor, error) {
	v, err := s.Vendors.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Vendor{}, NotFound("Vendor not found")
	}
	return v, err
}

func (s *VendorService) GetAll(ctx context.Context) ([]models.Vendor, error) {
	return s.Vendors.GetAll(ctx)
}

func (s *VendorService) validate(req models.CreateVendorRequest) error {
	var problems []string
	if strings.TrimSpace(req.VendorName) == "" {
		problems = append(problems, "vendor_name is required")
	}
	if strings.TrimSpace(req.GSTNumber) == "" {
		problems = append(problems, "gst_number is required")
	}
	if strings.TrimSpace(req.PANNumber) == "" {
		problems = append(problems, "pan_number is required")
	}
	if len(problems) > 0 {
		return Invalid("Validation failed", problems...)
	}
	return nil
}

func (s *VendorService) checkNaturalKeys(ctx context.Context, req models.CreateVendorRequest, excludeID int64) error {
	taken, err := s.Vendors.GSTExists(ctx, strings.TrimSpace(req.GSTNumber), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Invalid("Vendor with this GST number already exists")
	}
	taken, err = s.Vendors.PANExists(ctx, strings.TrimSpace(req.PANNumber), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Invalid("Vendor with this PAN number already exists")
	}
	return nil
}

func (s *VendorService) Create(ctx context.Context, req models.CreateVendorRequest) (models.Vendor, error) {
	if err := s.validate(req); err != nil {
		return models.Vendor{}, err
	}
	if err := s.checkNaturalKeys(ctx, req, 0); err != nil {
		return models.Vendor{}, err
	}

	v, err := s.Vendors.Create(ctx, models.Vendor{
		VendorName:    strings.TrimSpace(req.VendorName),
		EmailAddress:  strings.TrimSpace(req.EmailAddress),
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		GSTNumber:     strings.TrimSpace(req.GSTNumber),
		PANNumber:     strings.TrimSpace(req.PANNumber),
		ContactPerson: req.ContactPerson,
		IsActive:      req.IsActive,
		IsVerified:    req.IsVerified,
		Status:        req.Status,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return models.Vendor{}, Invalid("Vendor with this GST or PAN number already exists")
		}
		return models.Vendor{}, err
	}
	log.Printf("vendors: created %d (%s)", v.VendorID, v.VendorName)
	return v, nil
}

func (s *VendorService) Update(ctx context.Context, id int64, req models.CreateVendorRequest) (models.Vendor, error) {
	if err := s.validate(req); err != nil {
		return models.Vendor{}, err
	}
	if err := s.checkNaturalKeys(ctx, req, id); err != nil {
		return models.Vendor{}, err
	}

	v, err := s.Vendors.Update(ctx, models.Vendor{
		VendorID:      id,
		VendorName:    strings.TrimSpace(req.VendorName),
		EmailAddress:  strings.TrimSpace(req.EmailAddress),
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		GSTNumber:     strings.TrimSpace(req.GSTNumber),
		PANNumber:     strings.TrimSpace(req.PANNumber),
		ContactPerson: req.ContactPerson,
		IsActive:      req.IsActive,
		IsVerified:    req.IsVerified,
		Status:        req.Status,
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Vendor{}, NotFound("Vendor not found")
	}
	if err != nil {
		return models.Vendor{}, err
	}
	log.Printf("vendors: updated %d (%s)", v.VendorID, v.VendorName)
	return v, nil
}

// Delete removes the vendor record entirely.
func (s *VendorService) Delete(ctx context.Context, id int64) error {
	err := s.Vendors.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NotFound("Vendor not found")
	}
	if err != nil {
		return err
	}
	log.Printf("vendors: deleted %d", id)
	return nil
}
