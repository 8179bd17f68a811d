package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductWhereEmptyFilter(t *testing.T) {
	where, args := buildProductWhere(&ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildProductWhereProductPredicates(t *testing.T) {
	active := true
	inStock := true
	where, args := buildProductWhere(&ProductFilter{
		Search:     "shirt",
		CategoryID: "cat-1",
		IsActive:   &active,
		InStock:    &inStock,
	})

	assert.Equal(t, "WHERE p.name ILIKE $1 AND p.category_id = $2 AND p.is_active = $3 AND p.total_stock > 0", where)
	require.Len(t, args, 3)
	assert.Equal(t, "%shirt%", args[0])
	assert.Equal(t, "cat-1", args[1])
	assert.Equal(t, true, args[2])
}

func TestBuildProductWhereOutOfStock(t *testing.T) {
	inStock := false
	where, args := buildProductWhere(&ProductFilter{InStock: &inStock})
	assert.Equal(t, "WHERE p.total_stock = 0", where)
	assert.Empty(t, args)
}

func TestBuildProductWhereVariantPredicatesUseExists(t *testing.T) {
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(50)
	f := &ProductFilter{
		Size:     "M",
		Color:    "red",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	}
	require.True(t, f.HasVariantPredicates())

	where, args := buildProductWhere(f)
	assert.Contains(t, where, "EXISTS (SELECT 1 FROM product_variants v WHERE")
	assert.Contains(t, where, "v.is_active = TRUE")
	assert.Contains(t, where, "v.size = $1")
	assert.Contains(t, where, "v.color ->> 'name' ILIKE $2")
	assert.Contains(t, where, "v.price >= $3")
	assert.Contains(t, where, "v.price <= $4")
	assert.Len(t, args, 4)
}

func TestBuildProductWhereNoExistsWithoutVariantPredicates(t *testing.T) {
	f := &ProductFilter{Search: "shirt"}
	require.False(t, f.HasVariantPredicates())

	where, _ := buildProductWhere(f)
	assert.NotContains(t, where, "EXISTS")
}

func TestBuildProductWhereMixedPredicatesKeepPositionalOrder(t *testing.T) {
	active := true
	where, args := buildProductWhere(&ProductFilter{
		CategoryID: "cat-1",
		IsActive:   &active,
		Size:       "L",
	})

	assert.Contains(t, where, "p.category_id = $1")
	assert.Contains(t, where, "p.is_active = $2")
	assert.Contains(t, where, "v.size = $3")
	assert.Len(t, args, 3)
}

func TestOrderClauseWhitelist(t *testing.T) {
	assert.Equal(t, "ORDER BY p.name ASC", orderClause("name", "asc"))
	assert.Equal(t, "ORDER BY p.total_stock DESC", orderClause("totalStock", "desc"))
	assert.Equal(t, "ORDER BY p.updated_at DESC", orderClause("updatedAt", ""))
}

func TestOrderClauseRejectsUnknownColumn(t *testing.T) {
	// Client-supplied sort fields never reach the query verbatim.
	assert.Equal(t, "ORDER BY p.created_at DESC", orderClause("price; DROP TABLE products", "asc"))
	assert.Equal(t, "ORDER BY p.created_at DESC", orderClause("", ""))
}
