package repository

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/PhiHoang41/lumina-backend/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilter holds the recognized listing filters. Size, Color, MinPrice
// and MaxPrice are variant-level: when any of them is set the query must be
// evaluated against each product's active variant set.
type ProductFilter struct {
	Search     string
	CategoryID string
	IsActive   *bool
	InStock    *bool
	Size       string
	Color      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// HasVariantPredicates reports whether the filter must join against variants.
func (f *ProductFilter) HasVariantPredicates() bool {
	return f.Size != "" || f.Color != "" || f.MinPrice != nil || f.MaxPrice != nil
}

// Sortable product columns. Unknown sort fields fall back to the default so
// client input never reaches the query verbatim.
var productSortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"name":       "name",
	"totalStock": "total_stock",
}

// buildProductWhere compiles the filter into a WHERE clause over products p
// with positional args. Variant-level predicates become a single EXISTS
// subquery that keeps a product only if at least one active variant satisfies
// every supplied predicate.
func buildProductWhere(f *ProductFilter) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	argIdx := 1

	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", argIdx))
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}
	if f.CategoryID != "" {
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", argIdx))
		args = append(args, f.CategoryID)
		argIdx++
	}
	if f.IsActive != nil {
		conds = append(conds, fmt.Sprintf("p.is_active = $%d", argIdx))
		args = append(args, *f.IsActive)
		argIdx++
	}
	if f.InStock != nil {
		if *f.InStock {
			conds = append(conds, "p.total_stock > 0")
		} else {
			conds = append(conds, "p.total_stock = 0")
		}
	}

	if f.HasVariantPredicates() {
		vconds := []string{"v.product_id = p.id", "v.is_active = TRUE"}
		if f.Size != "" {
			vconds = append(vconds, fmt.Sprintf("v.size = $%d", argIdx))
			args = append(args, f.Size)
			argIdx++
		}
		if f.Color != "" {
			vconds = append(vconds, fmt.Sprintf("v.color ->> 'name' ILIKE $%d", argIdx))
			args = append(args, f.Color)
			argIdx++
		}
		if f.MinPrice != nil {
			vconds = append(vconds, fmt.Sprintf("v.price >= $%d", argIdx))
			args = append(args, *f.MinPrice)
			argIdx++
		}
		if f.MaxPrice != nil {
			vconds = append(vconds, fmt.Sprintf("v.price <= $%d", argIdx))
			args = append(args, *f.MaxPrice)
			argIdx++
		}
		conds = append(conds, "EXISTS (SELECT 1 FROM product_variants v WHERE "+strings.Join(vconds, " AND ")+")")
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderClause resolves the sort whitelist; default is created_at DESC.
func orderClause(sortBy, sortOrder string) string {
	col, ok := productSortColumns[sortBy]
	if !ok {
		col = "created_at"
		sortOrder = "desc"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY p.%s %s", col, dir)
}

// List returns a page of products matching the filter and the total count
// computed over the same predicate.
func (r *ProductRepository) List(f *ProductFilter) ([]models.Product, int, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	offset := (f.Page - 1) * f.Limit

	where, args := buildProductWhere(f)

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM products p `+where, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`SELECT p.* FROM products p %s %s LIMIT $%d OFFSET $%d`,
		where, orderClause(f.SortBy, f.SortOrder), len(args)+1, len(args)+2)
	args = append(args, f.Limit, offset)

	products := []models.Product{}
	if err := r.db.Select(&products, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	var p models.Product
	if err := r.db.Get(&p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsByName reports whether another product already uses the name.
func (r *ProductRepository) ExistsByName(name, excludeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(1) FROM products
		WHERE name = $1 AND ($2 = '' OR id::text != $2)`, name, excludeID)
	return n > 0, err
}

// GetRelated returns up to limit active products sharing the category,
// excluding the product itself.
func (r *ProductRepository) GetRelated(categoryID, excludeID string, limit int) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Select(&products, `
		SELECT * FROM products
		WHERE category_id = $1 AND id::text != $2 AND is_active = TRUE
		ORDER BY created_at DESC LIMIT $3`, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
		INSERT INTO products (id, name, slug, description, category_id, images, total_stock, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		p.ID, p.Name, p.Slug, p.Description, p.CategoryID, p.Images, p.TotalStock, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update persists all mutable fields of an existing product. total_stock is
// deliberately excluded; it only moves through UpdateTotalStock.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
		UPDATE products
		SET name = $2, slug = $3, description = $4, category_id = $5, images = $6,
		    is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowx(q,
		p.ID, p.Name, p.Slug, p.Description, p.CategoryID, p.Images, p.IsActive,
	).Scan(&p.UpdatedAt)
}

// UpdateTotalStock writes the recomputed aggregate stock of a product.
func (r *ProductRepository) UpdateTotalStock(id string, totalStock int) error {
	_, err := r.db.Exec(`UPDATE products SET total_stock = $2, updated_at = NOW() WHERE id = $1`, id, totalStock)
	return err
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}
