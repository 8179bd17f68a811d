package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/service"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// CouponHandler exposes admin coupon management endpoints.
type CouponHandler struct {
	coupons *service.CouponService
}

// NewCouponHandler constructs a CouponHandler.
func NewCouponHandler(coupons *service.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

type updateCouponStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List handles GET /api/v1/coupons.
func (h *CouponHandler) List(c *gin.Context) {
	filter := &repository.CouponFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 10),
	}

	coupons, total, err := h.coupons.List(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessWithPagination(c, http.StatusOK, "Coupons retrieved successfully", coupons, filter.Page, filter.Limit, total)
}

// Get handles GET /api/v1/coupons/:id.
func (h *CouponHandler) Get(c *gin.Context) {
	coupon, err := h.coupons.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Coupon retrieved successfully", coupon)
}

// Create handles POST /api/v1/coupons.
func (h *CouponHandler) Create(c *gin.Context) {
	var req service.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	coupon, err := h.coupons.Create(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Coupon created successfully", coupon)
}

// Update handles PUT /api/v1/coupons/:id.
func (h *CouponHandler) Update(c *gin.Context) {
	var req service.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	coupon, err := h.coupons.Update(c.Param("id"), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Coupon updated successfully", coupon)
}

// UpdateStatus handles PATCH /api/v1/coupons/:id/status.
func (h *CouponHandler) UpdateStatus(c *gin.Context) {
	var req updateCouponStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	coupon, err := h.coupons.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Coupon status updated successfully", coupon)
}

// Delete handles DELETE /api/v1/coupons/:id.
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.coupons.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Coupon deleted successfully", nil)
}
