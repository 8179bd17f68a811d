package service

import (
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// StockService keeps a product's totalStock equal to the sum of stock over
// its active variants. Every variant mutation triggers one full recompute;
// variant counts per product are small enough that this stays cheap.
type StockService struct {
	products ProductStore
	variants VariantStore
}

// NewStockService constructs a StockService.
func NewStockService(products ProductStore, variants VariantStore) *StockService {
	return &StockService{products: products, variants: variants}
}

// RecomputeTotalStock sums stock over the product's active variants and
// writes the result into the product. Failures propagate to the caller.
func (s *StockService) RecomputeTotalStock(productID string) error {
	total, err := s.variants.SumActiveStock(productID)
	if err != nil {
		return utils.InternalError(err)
	}
	if err := s.products.UpdateTotalStock(productID, total); err != nil {
		return utils.InternalError(err)
	}
	return nil
}
