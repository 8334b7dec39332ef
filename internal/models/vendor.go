package models

import "time"

// Vendor is a supplier record. Vendors are hard-deleted.
type Vendor struct {
	VendorID      int64     `json:"vendor_id"`
	VendorName    string    `json:"vendor_name"`
	EmailAddress  string    `json:"email_address"`
	PhoneNumber   string    `json:"phone_number"`
	Address       string    `json:"address"`
	GSTNumber     string    `json:"gst_number"`
	PANNumber     string    `json:"pan_number"`
	ContactPerson string    `json:"contact_person"`
	IsActive      bool      `json:"is_active"`
	IsVerified    bool      `json:"is_verified"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateVendorRequest doubles as the update body.
type CreateVendorRequest struct {
	VendorName    string `json:"vendor_name"`
	EmailAddress  string `json:"email_address"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	GSTNumber     string `json:"gst_number"`
	PANNumber     string `json:"pan_number"`
	ContactPerson string `json:"contact_person"`
	IsActive      bool   `json:"is_active"`
	IsVerified    bool   `json:"is_verified"`
	Status        string `json:"status"`
}
