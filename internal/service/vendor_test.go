package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"asset-management-api/internal/models"
)

func validVendorRequest() models.CreateVendorRequest {
	return models.CreateVendorRequest{
		VendorName: "Acme Supplies",
		GSTNumber:  "29ABCDE1234F1Z5",
		PANNumber:  "ABCDE1234F",
		IsActive:   true,
		Status:     "Active",
	}
}

func TestVendorService_Create(t *testing.T) {
	ctx := context.Background()
	vendors := newFakeVendorRepo()
	svc := NewVendorService(vendors)

	t.Run("missing natural keys", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateVendorRequest{})
		se, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, "Validation failed", se.Message)
		require.Contains(t, se.Fields, "gst_number is required")
		require.Contains(t, se.Fields, "pan_number is required")
	})

	t.Run("success", func(t *testing.T) {
		v, err := svc.Create(ctx, validVendorRequest())
		require.NoError(t, err)
		require.Equal(t, "Acme Supplies", v.VendorName)
		require.NotZero(t, v.VendorID)
	})

	t.Run("duplicate GST", func(t *testing.T) {
		req := validVendorRequest()
		req.VendorName = "Other Supplies"
		req.PANNumber = "ZZZZZ9999Z"
		_, err := svc.Create(ctx, req)
		se, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, "Vendor with this GST number already exists", se.Message)
	})

	t.Run("duplicate PAN", func(t *testing.T) {
		req := validVendorRequest()
		req.VendorName = "Other Supplies"
		req.GSTNumber = "07ZZZZZ9999Z1Z9"
		_, err := svc.Create(ctx, req)
		se, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, "Vendor with this PAN number already exists", se.Message)
	})
}

func TestVendorService_Update(t *testing.T) {
	ctx := context.Background()
	vendors := newFakeVendorRepo()
	svc := NewVendorService(vendors)

	first, err := svc.Create(ctx, validVendorRequest())
	require.NoError(t, err)

	second := validVendorRequest()
	second.VendorName = "Beta Traders"
	second.GSTNumber = "07ZZZZZ9999Z1Z9"
	second.PANNumber = "ZZZZZ9999Z"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	t.Run("keeping its own keys is fine", func(t *testing.T) {
		req := validVendorRequest()
		req.VendorName = "Acme Supplies Pvt Ltd"
		v, err := svc.Update(ctx, first.VendorID, req)
		require.NoError(t, err)
		require.Equal(t, "Acme Supplies Pvt Ltd", v.VendorName)
	})

	t.Run("cannot take another vendor's GST", func(t *testing.T) {
		req := second
		req.GSTNumber = first.GSTNumber
		_, err := svc.Update(ctx, other.VendorID, req)
		se, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, "Vendor with this GST number already exists", se.Message)
	})

	t.Run("not found", func(t *testing.T) {
		req := validVendorRequest()
		req.GSTNumber = "33NOPEX0000X1Z1"
		req.PANNumber = "NOPEX0000X"
		_, err := svc.Update(ctx, 9999, req)
		se, ok := AsError(err)
		require.True(t, ok)
		require.Equal(t, "Vendor not found", se.Message)
	})
}

func TestVendorService_Delete(t *testing.T) {
	ctx := context.Background()
	vendors := newFakeVendorRepo()
	svc := NewVendorService(vendors)

	v, err := svc.Create(ctx, validVendorRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, v.VendorID))

	// Hard delete: the record is gone and the keys are reusable.
	_, err = svc.GetByID(ctx, v.VendorID)
	se, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, KindNotFound, se.Kind)

	_, err = svc.Create(ctx, validVendorRequest())
	require.NoError(t, err)
}
