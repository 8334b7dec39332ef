package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"asset-management-api/internal/models"
)

func TestBrandService_Create(t *testing.T) {
	ctx := context.Background()
	brands := newFakeBrandRepo()
	brands.add(models.Brand{Name: "Dell", IsActive: true})
	svc := NewBrandService(brands)

	_, err := svc.Create(ctx, models.CreateBrandRequest{Name: "dell", IsActive: true})
	se, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, "Brand with this name already exists", se.Message)

	b, err := svc.Create(ctx, models.CreateBrandRequest{Name: "Lenovo", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, "Lenovo", b.Name)
}

func TestBrandService_Delete(t *testing.T) {
	ctx := context.Background()
	brands := newFakeBrandRepo()
	referenced := brands.add(models.Brand{Name: "Dell", IsActive: true})
	brands.dependents[referenced.ID] = 3
	svc := NewBrandService(brands)

	err := svc.Delete(ctx, referenced.ID)
	se, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, "Cannot delete brand that is referenced by assets", se.Message)

	brands.dependents[referenced.ID] = 0
	require.NoError(t, svc.Delete(ctx, referenced.ID))

	_, err = svc.GetByID(ctx, referenced.ID)
	se, ok = AsError(err)
	require.True(t, ok)
	require.Equal(t, "Brand not found", se.Message)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.False(t, all[0].IsActive)
}
