package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// VariantService handles variant CRUD under a product. Every mutation
// recomputes the owning product's totalStock before returning.
type VariantService struct {
	products ProductStore
	variants VariantStore
	stock    *StockService
}

// NewVariantService constructs a VariantService.
func NewVariantService(products ProductStore, variants VariantStore, stock *StockService) *VariantService {
	return &VariantService{products: products, variants: variants, stock: stock}
}

// UpdateVariantRequest represents a partial variant update.
type UpdateVariantRequest struct {
	Size     string           `json:"size"`
	Color    *ColorInput      `json:"color"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	Images   []string         `json:"images"`
	IsActive *bool            `json:"isActive"`
}

// UpdateStockRequest carries a direct stock-only update.
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// List returns all variants of a product.
func (s *VariantService) List(productID string) ([]models.ProductVariant, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Product not found")
		}
		return nil, utils.InternalError(err)
	}
	variants, err := s.variants.GetByProductID(productID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return variants, nil
}

// Create adds a variant to a product and recomputes its totalStock.
func (s *VariantService) Create(productID string, in *VariantInput) (*models.ProductVariant, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Product not found")
		}
		return nil, utils.InternalError(err)
	}
	if err := validateVariantInput(in); err != nil {
		return nil, err
	}

	exists, err := s.variants.ExistsSizeColor(productID, in.Size, in.Color.Name, "")
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if exists {
		return nil, utils.ConflictError("Variant with this size and color already exists")
	}

	v := buildVariant(productID, in)
	if err := s.variants.Create(v); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Variant with this size and color already exists")
		}
		return nil, utils.InternalError(err)
	}

	if err := s.stock.RecomputeTotalStock(productID); err != nil {
		return nil, err
	}
	return v, nil
}

// Update applies only the supplied fields to a variant addressed by
// (productID, variantID) and recomputes the product's totalStock.
func (s *VariantService) Update(productID, variantID string, req *UpdateVariantRequest) (*models.ProductVariant, error) {
	v, err := s.load(productID, variantID)
	if err != nil {
		return nil, err
	}

	size := v.Size
	colorName := v.Color.Name
	if req.Size != "" {
		size = strings.TrimSpace(req.Size)
	}
	if req.Color != nil && req.Color.Name != "" {
		colorName = strings.TrimSpace(req.Color.Name)
	}
	if size != v.Size || colorName != v.Color.Name {
		exists, err := s.variants.ExistsSizeColor(productID, size, colorName, variantID)
		if err != nil {
			return nil, utils.InternalError(err)
		}
		if exists {
			return nil, utils.ConflictError("Variant with this size and color already exists")
		}
	}

	v.Size = size
	if req.Color != nil {
		hex := req.Color.Hex
		if hex == "" {
			hex = v.Color.Hex
		}
		v.Color = models.Color{Name: colorName, Hex: hex}
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, utils.ValidationError("Variant price must not be negative")
		}
		v.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, utils.ValidationError("Variant stock must not be negative")
		}
		v.Stock = *req.Stock
	}
	if req.Images != nil {
		v.Images = imagesOrEmpty(req.Images)
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := s.variants.Update(v); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Variant with this size and color already exists")
		}
		return nil, utils.InternalError(err)
	}

	if err := s.stock.RecomputeTotalStock(productID); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a variant and recomputes the product's totalStock.
func (s *VariantService) Delete(productID, variantID string) error {
	if _, err := s.load(productID, variantID); err != nil {
		return err
	}
	if err := s.variants.Delete(variantID); err != nil {
		return utils.InternalError(err)
	}
	return s.stock.RecomputeTotalStock(productID)
}

// UpdateStock performs a direct stock-only update and recomputes totalStock.
func (s *VariantService) UpdateStock(productID, variantID string, req *UpdateStockRequest) (*models.ProductVariant, error) {
	v, err := s.load(productID, variantID)
	if err != nil {
		return nil, err
	}
	if req.Stock == nil {
		return nil, utils.ValidationError("Stock is required")
	}
	if *req.Stock < 0 {
		return nil, utils.ValidationError("Variant stock must not be negative")
	}

	v.Stock = *req.Stock
	if err := s.variants.Update(v); err != nil {
		return nil, utils.InternalError(err)
	}

	if err := s.stock.RecomputeTotalStock(productID); err != nil {
		return nil, err
	}
	return v, nil
}

// load fetches a variant and verifies it belongs to the addressed product.
// A mismatch is a client error, not a missing resource.
func (s *VariantService) load(productID, variantID string) (*models.ProductVariant, error) {
	v, err := s.variants.GetByID(variantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Variant not found")
		}
		return nil, utils.InternalError(err)
	}
	if v.ProductID != productID {
		return nil, utils.ValidationError("Variant does not belong to this product")
	}
	return v, nil
}
