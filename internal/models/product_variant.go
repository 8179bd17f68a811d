package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Color is the variant color stored as a JSONB column.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Value implements driver.Valuer for JSONB storage.
func (c Color) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (c *Color) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into Color", src)
	}
}

// ProductVariant is a purchasable size/color unit of a product with its own
// price and stock. (product, size, color.name) is unique per product.
type ProductVariant struct {
	ID        string          `db:"id" json:"id"`
	ProductID string          `db:"product_id" json:"productId"`
	Size      string          `db:"size" json:"size"`
	Color     Color           `db:"color" json:"color"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Stock     int             `db:"stock" json:"stock"`
	Images    pq.StringArray  `db:"images" json:"images"`
	IsActive  bool            `db:"is_active" json:"isActive"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
