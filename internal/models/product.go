package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a catalog entry. TotalStock is derived from the active variant
// set and is never written directly by clients.
type Product struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description string         `db:"description" json:"description"`
	CategoryID  string         `db:"category_id" json:"categoryId"`
	Images      pq.StringArray `db:"images" json:"images"`
	TotalStock  int            `db:"total_stock" json:"totalStock"`
	IsActive    bool           `db:"is_active" json:"isActive"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`

	// Attached for display by a separate lookup; not columns of products.
	Category *Category        `db:"-" json:"category,omitempty"`
	Variants []ProductVariant `db:"-" json:"variants,omitempty"`
}
