package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PhiHoang41/lumina-backend/internal/service"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// CategoryHandler exposes category read and admin CRUD endpoints.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/v1/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)
	isActive := parseBoolQuery(c, "isActive")

	categories, total, err := h.categories.List(isActive, page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessWithPagination(c, http.StatusOK, "Categories retrieved successfully", categories, page, limit, total)
}

// Get handles GET /api/v1/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

// GetBySlug handles GET /api/v1/categories/slug/:slug.
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.categories.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categories.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Category created successfully", category)
}

// Update handles PUT /api/v1/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categories.Update(c.Param("id"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/v1/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Category deleted successfully", nil)
}

// parseIntQuery reads an integer query param, falling back on bad input.
func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseBoolQuery reads an optional boolean query param. Absent or malformed
// values mean "no filter".
func parseBoolQuery(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}
