package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhiHoang41/lumina-backend/internal/service"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// VariantHandler exposes variant CRUD endpoints scoped under a product.
type VariantHandler struct {
	variants *service.VariantService
}

// NewVariantHandler constructs a VariantHandler.
func NewVariantHandler(variants *service.VariantService) *VariantHandler {
	return &VariantHandler{variants: variants}
}

// List handles GET /api/v1/products/:id/variants.
func (h *VariantHandler) List(c *gin.Context) {
	variants, err := h.variants.List(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Variants retrieved successfully", variants)
}

// Create handles POST /api/v1/admin/products/:id/variants.
func (h *VariantHandler) Create(c *gin.Context) {
	var req service.VariantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	variant, err := h.variants.Create(c.Param("id"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Variant created successfully", variant)
}

// Update handles PUT /api/v1/admin/products/:id/variants/:variantId.
func (h *VariantHandler) Update(c *gin.Context) {
	var req service.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	variant, err := h.variants.Update(c.Param("id"), c.Param("variantId"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Variant updated successfully", variant)
}

// Delete handles DELETE /api/v1/admin/products/:id/variants/:variantId.
func (h *VariantHandler) Delete(c *gin.Context) {
	if err := h.variants.Delete(c.Param("id"), c.Param("variantId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Variant deleted successfully", nil)
}

// UpdateStock handles PATCH /api/v1/admin/products/:id/variants/:variantId/stock.
func (h *VariantHandler) UpdateStock(c *gin.Context) {
	var req service.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	variant, err := h.variants.UpdateStock(c.Param("id"), c.Param("variantId"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Stock updated successfully", variant)
}
