package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/service"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// ProductHandler exposes product read and admin CRUD endpoints.
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/v1/products. All filters are optional and combine
// with AND semantics.
func (h *ProductHandler) List(c *gin.Context) {
	filter := &repository.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category"),
		IsActive:   parseBoolQuery(c, "isActive"),
		InStock:    parseBoolQuery(c, "inStock"),
		Size:       c.Query("size"),
		Color:      c.Query("color"),
		MinPrice:   parseDecimalQuery(c, "minPrice"),
		MaxPrice:   parseDecimalQuery(c, "maxPrice"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Page:       parseIntQuery(c, "page", 1),
		Limit:      parseIntQuery(c, "limit", 10),
	}

	products, total, err := h.products.List(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessWithPagination(c, http.StatusOK, "Products retrieved successfully", products, filter.Page, filter.Limit, total)
}

// Get handles GET /api/v1/products/:id and returns the product with its
// related products.
func (h *ProductHandler) Get(c *gin.Context) {
	detail, err := h.products.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product retrieved successfully", detail)
}

// Create handles POST /api/v1/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.products.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Product created successfully", product)
}

// Update handles PUT /api/v1/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.products.Update(c.Param("id"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /api/v1/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product deleted successfully", nil)
}

// ToggleActive handles PATCH /api/v1/admin/products/:id/activate.
func (h *ProductHandler) ToggleActive(c *gin.Context) {
	product, err := h.products.ToggleActive(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Product status updated successfully", product)
}

// parseDecimalQuery reads an optional decimal query param, ignoring bad input.
func parseDecimalQuery(c *gin.Context, key string) *decimal.Decimal {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
