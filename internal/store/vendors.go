package store

import (
	"context"
	"database/sql"

	"asset-management-api/internal/models"
)

// VendorStore persists vendors.
type VendorStore struct {
	DB *sql.DB
}

func NewVendorStore(db *sql.DB) *VendorStore {
	return &VendorStore{DB: db}
}

const vendorColumns = `
	vendor_id, vendor_name, email_address, phone_number, address,
	gst_number, pan_number, contact_person, is_active, is_verified,
	status, created_at`

func scanVendor(row interface{ Scan(...any) error }) (models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(
		&v.VendorID, &v.VendorName, &v.EmailAddress, &v.PhoneNumber, &v.Address,
		&v.GSTNumber, &v.PANNumber, &v.ContactPerson, &v.IsActive, &v.IsVerified,
		&v.Status, &v.CreatedAt,
	)
	return v, err
}

func (s *VendorStore) GetByID(ctx context.Context, id int64) (models.Vendor, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT`+vendorColumns+` FROM vendors WHERE vendor_id = $1`, id)
	v, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return models.Vendor{}, ErrNotFound
	}
	return v, err
}

func (s *VendorStore) GetAll(ctx context.Context) ([]models.Vendor, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT`+vendorColumns+` FROM vendors ORDER BY vendor_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []models.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

// GSTExists checks the GST number, optionally excluding one vendor.
func (s *VendorStore) GSTExists(ctx context.Context, gst string, excludeID int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM vendors WHERE gst_number = $1 AND vendor_id <> $2
		)`, gst, excludeID).Scan(&exists)
	return exists, err
}

// PANExists checks the PAN number, optionally excluding one vendor.
func (s *VendorStore) PANExists(ctx context.Context, pan string, excludeID int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM vendors WHERE pan_number = $1 AND vendor_id <> $2
		)`, pan, excludeID).Scan(&exists)
	return exists, err
}

func (s *VendorStore) Create(ctx context.Context, v models.Vendor) (models.Vendor, error) {
	row := s.DB.QueryRowContext(ctx, `
		INSERT INTO vendors (vendor_name, email_address, phone_number, address,
			gst_number, pan_number, contact_person, is_active, is_verified, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING`+vendorColumns,
		v.VendorName, v.EmailAddress, v.PhoneNumber, v.Address,
		v.GSTNumber, v.PANNumber, v.ContactPerson, v.IsActive, v.IsVerified, v.Status)
	return scanVendor(row)
}

func (s *VendorStore) Update(ctx context.Context, v models.Vendor) (models.Vendor, error) {
	row := s.DB.QueryRowContext(ctx, `
		UPDATE vendors
		SET vendor_name = $1, email_address = $2, phone_number = $3, address = $4,
		    gst_number = $5, pan_number = $6, contact_person = $7,
		    is_active = $8, is_verified = $9, status = $10
		WHERE vendor_id = $11
		RETURNING`+vendorColumns,
		v.VendorName, v.EmailAddress, v.PhoneNumber, v.Address,
		v.GSTNumber, v.PANNumber, v.ContactPerson,
		v.IsActive, v.IsVerified, v.Status, v.VendorID)
	out, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return models.Vendor{}, ErrNotFound
	}
	return out, err
}

// Delete removes the vendor row.
func (s *VendorStore) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM vendors WHERE vendor_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
