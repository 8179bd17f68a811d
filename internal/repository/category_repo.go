package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/PhiHoang41/lumina-backend/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(id string) (*models.Category, error) {
	var c models.Category
	if err := r.db.Get(&c, `SELECT * FROM categories WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBySlug returns a single category by slug.
func (r *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var c models.Category
	if err := r.db.Get(&c, `SELECT * FROM categories WHERE slug = $1 LIMIT 1`, slug); err != nil {
		return nil, err
	}
	return &c, nil
}

// ExistsByName reports whether another category already uses the name.
// excludeID may be empty for create checks.
func (r *CategoryRepository) ExistsByName(name, excludeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(1) FROM categories
		WHERE name = $1 AND ($2 = '' OR id::text != $2)`, name, excludeID)
	return n > 0, err
}

// List returns categories with an optional isActive filter and pagination,
// newest first, along with the total count over the same predicate.
func (r *CategoryRepository) List(isActive *bool, page, limit int) ([]models.Category, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1::boolean IS NULL OR is_active = $1)`

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM categories `+baseWhere, isActive); err != nil {
		return nil, 0, err
	}

	categories := []models.Category{}
	err := r.db.Select(&categories, `
		SELECT * FROM categories `+baseWhere+`
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, isActive, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Create inserts a new category.
func (r *CategoryRepository) Create(c *models.Category) error {
	const q = `
		INSERT INTO categories (id, name, slug, image, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowx(q, c.ID, c.Name, c.Slug, c.Image, c.IsActive).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Update persists all mutable fields of an existing category.
func (r *CategoryRepository) Update(c *models.Category) error {
	const q = `
		UPDATE categories
		SET name = $2, slug = $3, image = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowx(q, c.ID, c.Name, c.Slug, c.Image, c.IsActive).
		Scan(&c.UpdatedAt)
}

// Delete removes a category by id.
func (r *CategoryRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}
