package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/PhiHoang41/lumina-backend/internal/models"
)

// VariantRepository handles data access for product variants.
type VariantRepository struct {
	db *sqlx.DB
}

// NewVariantRepository creates a new VariantRepository.
func NewVariantRepository(db *sqlx.DB) *VariantRepository {
	return &VariantRepository{db: db}
}

// GetByID returns a single variant by id.
func (r *VariantRepository) GetByID(id string) (*models.ProductVariant, error) {
	var v models.ProductVariant
	if err := r.db.Get(&v, `SELECT * FROM product_variants WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByProductID returns all variants of a product ordered by size then color.
func (r *VariantRepository) GetByProductID(productID string) ([]models.ProductVariant, error) {
	variants := []models.ProductVariant{}
	err := r.db.Select(&variants, `
		SELECT * FROM product_variants
		WHERE product_id = $1
		ORDER BY size, color ->> 'name'`, productID)
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// ExistsSizeColor reports whether the product already has a variant with the
// given size and color name. excludeID may be empty for create checks.
func (r *VariantRepository) ExistsSizeColor(productID, size, colorName, excludeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(1) FROM product_variants
		WHERE product_id = $1 AND size = $2 AND color ->> 'name' = $3
		AND ($4 = '' OR id::text != $4)`, productID, size, colorName, excludeID)
	return n > 0, err
}

// SumActiveStock sums stock over the product's active variants.
func (r *VariantRepository) SumActiveStock(productID string) (int, error) {
	var total int
	err := r.db.Get(&total, `
		SELECT COALESCE(SUM(stock), 0) FROM product_variants
		WHERE product_id = $1 AND is_active = TRUE`, productID)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserts a new variant.
func (r *VariantRepository) Create(v *models.ProductVariant) error {
	const q = `
		INSERT INTO product_variants (id, product_id, size, color, price, stock, images, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		v.ID, v.ProductID, v.Size, v.Color, v.Price, v.Stock, v.Images, v.IsActive,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// Update persists all mutable fields of an existing variant. The product
// reference is immutable after creation and is not part of the update.
func (r *VariantRepository) Update(v *models.ProductVariant) error {
	const q = `
		UPDATE product_variants
		SET size = $2, color = $3, price = $4, stock = $5, images = $6,
		    is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowx(q,
		v.ID, v.Size, v.Color, v.Price, v.Stock, v.Images, v.IsActive,
	).Scan(&v.UpdatedAt)
}

// Delete removes a variant by id.
func (r *VariantRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM product_variants WHERE id = $1`, id)
	return err
}

// DeleteByProductID removes every variant of a product.
func (r *VariantRepository) DeleteByProductID(productID string) error {
	_, err := r.db.Exec(`DELETE FROM product_variants WHERE product_id = $1`, productID)
	return err
}
