package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// relatedLimit caps the related-products lookup on the product detail view.
const relatedLimit = 6

// ProductService handles product CRUD and the filtered listing.
type ProductService struct {
	products   ProductStore
	variants   VariantStore
	categories CategoryStore
	stock      *StockService
}

// NewProductService constructs a ProductService.
func NewProductService(products ProductStore, variants VariantStore, categories CategoryStore, stock *StockService) *ProductService {
	return &ProductService{
		products:   products,
		variants:   variants,
		categories: categories,
		stock:      stock,
	}
}

// ColorInput is the color payload of a variant request.
type ColorInput struct {
	Name string `json:"name" binding:"required"`
	Hex  string `json:"hex"`
}

// VariantInput is a variant payload supplied inline on product create or
// whole-set replacement on product update.
type VariantInput struct {
	Size     string          `json:"size" binding:"required"`
	Color    ColorInput      `json:"color" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Images   []string        `json:"images"`
	IsActive *bool           `json:"isActive"`
}

// CreateProductRequest represents the request to create a product.
type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	CategoryID  string         `json:"category" binding:"required"`
	Images      []string       `json:"images"`
	Variants    []VariantInput `json:"variants"`
	IsActive    *bool          `json:"isActive"`
}

// UpdateProductRequest represents a partial product update. A non-nil
// Variants pointer replaces the whole variant set.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	CategoryID  string          `json:"category"`
	Images      []string        `json:"images"`
	Variants    *[]VariantInput `json:"variants"`
	IsActive    *bool           `json:"isActive"`
}

// ProductDetail is a product with its related products attached.
type ProductDetail struct {
	Product *models.Product  `json:"product"`
	Related []models.Product `json:"relatedProducts"`
}

// List runs the filtered listing and attaches category and variants to each
// page item for display.
func (s *ProductService) List(f *repository.ProductFilter) ([]models.Product, int, error) {
	products, total, err := s.products.List(f)
	if err != nil {
		return nil, 0, utils.InternalError(err)
	}
	if err := s.attach(products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// attach loads category and variant data for the given products.
func (s *ProductService) attach(products []models.Product) error {
	categories := map[string]*models.Category{}
	for i := range products {
		p := &products[i]
		if c, ok := categories[p.CategoryID]; ok {
			p.Category = c
		} else {
			c, err := s.categories.GetByID(p.CategoryID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return utils.InternalError(err)
			}
			categories[p.CategoryID] = c
			p.Category = c
		}
		variants, err := s.variants.GetByProductID(p.ID)
		if err != nil {
			return utils.InternalError(err)
		}
		p.Variants = variants
	}
	return nil
}

// Get returns a product with category, variants and related products.
func (s *ProductService) Get(id string) (*ProductDetail, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Product not found")
		}
		return nil, utils.InternalError(err)
	}

	single := []models.Product{*p}
	if err := s.attach(single); err != nil {
		return nil, err
	}
	p = &single[0]

	related, err := s.products.GetRelated(p.CategoryID, p.ID, relatedLimit)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return &ProductDetail{Product: p, Related: related}, nil
}

// Create validates uniqueness and the category reference, persists the
// product and any inline variants, then recomputes totalStock. A product
// created without variants starts at totalStock 0 and skips the recompute.
func (s *ProductService) Create(req *CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, utils.ValidationError("Product name is required")
	}

	exists, err := s.products.ExistsByName(name, "")
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if exists {
		return nil, utils.ConflictError("Product name already exists")
	}

	if _, err := s.categories.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Category not found")
		}
		return nil, utils.InternalError(err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p := &models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      imagesOrEmpty(req.Images),
		TotalStock:  0,
		IsActive:    isActive,
	}

	if err := s.products.Create(p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Product name already exists")
		}
		return nil, utils.InternalError(err)
	}

	if len(req.Variants) > 0 {
		if err := s.createVariants(p.ID, req.Variants); err != nil {
			return nil, err
		}
		if err := s.stock.RecomputeTotalStock(p.ID); err != nil {
			return nil, err
		}
	}

	// Re-read so the response reflects the recomputed stock and variants.
	created, err := s.products.GetByID(p.ID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	single := []models.Product{*created}
	if err := s.attach(single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// Update applies only the supplied fields. A rename re-derives the slug; a
// category change re-checks the reference; a non-nil Variants pointer
// replaces the whole variant set and recomputes totalStock.
func (s *ProductService) Update(id string, req *UpdateProductRequest) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Product not found")
		}
		return nil, utils.InternalError(err)
	}

	if req.Name != "" && req.Name != p.Name {
		exists, err := s.products.ExistsByName(req.Name, id)
		if err != nil {
			return nil, utils.InternalError(err)
		}
		if exists {
			return nil, utils.ConflictError("Product name already exists")
		}
		p.Name = strings.TrimSpace(req.Name)
		p.Slug = slug.Make(p.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.CategoryID != "" {
		if _, err := s.categories.GetByID(req.CategoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, utils.NotFoundError("Category not found")
			}
			return nil, utils.InternalError(err)
		}
		p.CategoryID = req.CategoryID
	}
	if req.Images != nil {
		p.Images = imagesOrEmpty(req.Images)
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.products.Update(p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Product name already exists")
		}
		return nil, utils.InternalError(err)
	}

	if req.Variants != nil {
		if err := s.variants.DeleteByProductID(id); err != nil {
			return nil, utils.InternalError(err)
		}
		if len(*req.Variants) > 0 {
			if err := s.createVariants(id, *req.Variants); err != nil {
				return nil, err
			}
		}
		if err := s.stock.RecomputeTotalStock(id); err != nil {
			return nil, err
		}
	}

	updated, err := s.products.GetByID(id)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	single := []models.Product{*updated}
	if err := s.attach(single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// Delete removes a product and cascades to all of its variants first.
func (s *ProductService) Delete(id string) error {
	if _, err := s.products.GetByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.NotFoundError("Product not found")
		}
		return utils.InternalError(err)
	}
	if err := s.variants.DeleteByProductID(id); err != nil {
		return utils.InternalError(err)
	}
	if err := s.products.Delete(id); err != nil {
		return utils.InternalError(err)
	}
	return nil
}

// ToggleActive flips the active flag and returns the updated product.
func (s *ProductService) ToggleActive(id string) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Product not found")
		}
		return nil, utils.InternalError(err)
	}

	p.IsActive = !p.IsActive
	if err := s.products.Update(p); err != nil {
		return nil, utils.InternalError(err)
	}
	return p, nil
}

// createVariants validates and persists a batch of variant inputs for a
// product, rejecting duplicate size/color combinations within the batch and
// against the store.
func (s *ProductService) createVariants(productID string, inputs []VariantInput) error {
	seen := map[string]bool{}
	for i := range inputs {
		in := &inputs[i]
		if err := validateVariantInput(in); err != nil {
			return err
		}
		key := in.Size + "|" + strings.ToLower(in.Color.Name)
		if seen[key] {
			return utils.ConflictError(fmt.Sprintf("Duplicate variant %s / %s in request", in.Size, in.Color.Name))
		}
		seen[key] = true

		exists, err := s.variants.ExistsSizeColor(productID, in.Size, in.Color.Name, "")
		if err != nil {
			return utils.InternalError(err)
		}
		if exists {
			return utils.ConflictError("Variant with this size and color already exists")
		}

		v := buildVariant(productID, in)
		if err := s.variants.Create(v); err != nil {
			if repository.IsUniqueViolation(err) {
				return utils.ConflictError("Variant with this size and color already exists")
			}
			return utils.InternalError(err)
		}
	}
	return nil
}

// validateVariantInput enforces the field-level variant rules.
func validateVariantInput(in *VariantInput) error {
	if strings.TrimSpace(in.Size) == "" {
		return utils.ValidationError("Variant size is required")
	}
	if strings.TrimSpace(in.Color.Name) == "" {
		return utils.ValidationError("Variant color name is required")
	}
	if in.Price.IsNegative() {
		return utils.ValidationError("Variant price must not be negative")
	}
	if in.Stock < 0 {
		return utils.ValidationError("Variant stock must not be negative")
	}
	return nil
}

// buildVariant materializes a variant input with defaults applied.
func buildVariant(productID string, in *VariantInput) *models.ProductVariant {
	hex := in.Color.Hex
	if hex == "" {
		hex = "transparent"
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return &models.ProductVariant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Size:      strings.TrimSpace(in.Size),
		Color:     models.Color{Name: strings.TrimSpace(in.Color.Name), Hex: hex},
		Price:     in.Price,
		Stock:     in.Stock,
		Images:    imagesOrEmpty(in.Images),
		IsActive:  isActive,
	}
}

// imagesOrEmpty normalizes a nil image list to an empty array column value.
func imagesOrEmpty(images []string) pq.StringArray {
	if images == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(images)
}
