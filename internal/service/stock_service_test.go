package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/PhiHoang41/lumina-backend/internal/models"
)

func TestRecomputeTotalStockSumsActiveVariantsOnly(t *testing.T) {
	products := newFakeProductStore()
	variants := newFakeVariantStore()
	svc := NewStockService(products, variants)

	productID := uuid.New().String()
	require.NoError(t, products.Create(&models.Product{ID: productID, Name: "Tee", TotalStock: 99}))

	add := func(stock int, active bool) {
		require.NoError(t, variants.Create(&models.ProductVariant{
			ID:        uuid.New().String(),
			ProductID: productID,
			Stock:     stock,
			IsActive:  active,
		}))
	}
	add(5, true)
	add(3, true)
	add(7, false)

	require.NoError(t, svc.RecomputeTotalStock(productID))

	p, err := products.GetByID(productID)
	require.NoError(t, err)
	require.Equal(t, 8, p.TotalStock)
}

func TestRecomputeTotalStockNoVariants(t *testing.T) {
	products := newFakeProductStore()
	variants := newFakeVariantStore()
	svc := NewStockService(products, variants)

	productID := uuid.New().String()
	require.NoError(t, products.Create(&models.Product{ID: productID, Name: "Empty", TotalStock: 12}))

	require.NoError(t, svc.RecomputeTotalStock(productID))

	p, err := products.GetByID(productID)
	require.NoError(t, err)
	require.Equal(t, 0, p.TotalStock)
}
