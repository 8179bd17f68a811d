package service

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

var percentageMax = decimal.NewFromInt(100)

// CouponService handles coupon CRUD operations.
type CouponService struct {
	coupons CouponStore
}

// NewCouponService constructs a CouponService.
func NewCouponService(coupons CouponStore) *CouponService {
	return &CouponService{coupons: coupons}
}

// CreateCouponRequest represents the request to create a coupon.
type CreateCouponRequest struct {
	Code              string           `json:"code" binding:"required"`
	Description       string           `json:"description"`
	Type              string           `json:"type" binding:"required"`
	Value             decimal.Decimal  `json:"value" binding:"required"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	UsageLimit        *int             `json:"usageLimit"`
	ValidFrom         time.Time        `json:"validFrom" binding:"required"`
	ValidTo           time.Time        `json:"validTo" binding:"required"`
	Status            string           `json:"status"`
}

// UpdateCouponRequest represents a partial coupon update.
type UpdateCouponRequest struct {
	Code              string           `json:"code"`
	Description       *string          `json:"description"`
	Type              string           `json:"type"`
	Value             *decimal.Decimal `json:"value"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	UsageLimit        *int             `json:"usageLimit"`
	UsedCount         *int             `json:"usedCount"`
	ValidFrom         *time.Time       `json:"validFrom"`
	ValidTo           *time.Time       `json:"validTo"`
	Status            string           `json:"status"`
}

// List returns coupons matching the filter.
func (s *CouponService) List(f *repository.CouponFilter) ([]models.Coupon, int, error) {
	coupons, total, err := s.coupons.List(f)
	if err != nil {
		return nil, 0, utils.InternalError(err)
	}
	return coupons, total, nil
}

// GetByID returns a coupon by id.
func (s *CouponService) GetByID(id string) (*models.Coupon, error) {
	c, err := s.coupons.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Coupon not found")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// Create validates the discount rules and persists the coupon with its code
// stored uppercase.
func (s *CouponService) Create(req *CreateCouponRequest) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, utils.ValidationError("Coupon code is required")
	}

	ctype := models.CouponType(req.Type)
	if ctype != models.CouponPercentage && ctype != models.CouponFixedAmount {
		return nil, utils.ValidationError("Coupon type must be PERCENTAGE or FIXED_AMOUNT")
	}
	if err := validateCouponValue(ctype, req.Value); err != nil {
		return nil, err
	}
	if !req.ValidFrom.Before(req.ValidTo) {
		return nil, utils.ValidationError("Valid-to must be after valid-from")
	}

	minOrder := decimal.Zero
	if req.MinOrderAmount != nil {
		if req.MinOrderAmount.IsNegative() {
			return nil, utils.ValidationError("Minimum order amount must not be negative")
		}
		minOrder = *req.MinOrderAmount
	}
	if req.MaxDiscountAmount != nil && req.MaxDiscountAmount.IsNegative() {
		return nil, utils.ValidationError("Maximum discount amount must not be negative")
	}
	if req.UsageLimit != nil && *req.UsageLimit < 0 {
		return nil, utils.ValidationError("Usage limit must not be negative")
	}

	status := models.CouponActive
	if req.Status != "" {
		var err error
		if status, err = parseCouponStatus(req.Status); err != nil {
			return nil, err
		}
	}

	exists, err := s.coupons.ExistsByCode(code, "")
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if exists {
		return nil, utils.ConflictError("Coupon code already exists")
	}

	c := &models.Coupon{
		ID:                uuid.New().String(),
		Code:              code,
		Description:       req.Description,
		Type:              ctype,
		Value:             req.Value,
		MinOrderAmount:    minOrder,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        req.UsageLimit,
		UsedCount:         0,
		ValidFrom:         req.ValidFrom,
		ValidTo:           req.ValidTo,
		Status:            status,
	}

	if err := s.coupons.Create(c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Coupon code already exists")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// Update applies only the supplied fields; the discount and window rules are
// re-validated against the effective values after the partial apply.
func (s *CouponService) Update(id string, req *UpdateCouponRequest) (*models.Coupon, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Code != "" {
		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if code != c.Code {
			exists, err := s.coupons.ExistsByCode(code, id)
			if err != nil {
				return nil, utils.InternalError(err)
			}
			if exists {
				return nil, utils.ConflictError("Coupon code already exists")
			}
			c.Code = code
		}
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Type != "" {
		ctype := models.CouponType(req.Type)
		if ctype != models.CouponPercentage && ctype != models.CouponFixedAmount {
			return nil, utils.ValidationError("Coupon type must be PERCENTAGE or FIXED_AMOUNT")
		}
		c.Type = ctype
	}
	if req.Value != nil {
		c.Value = *req.Value
	}
	if err := validateCouponValue(c.Type, c.Value); err != nil {
		return nil, err
	}
	if req.MinOrderAmount != nil {
		if req.MinOrderAmount.IsNegative() {
			return nil, utils.ValidationError("Minimum order amount must not be negative")
		}
		c.MinOrderAmount = *req.MinOrderAmount
	}
	if req.MaxDiscountAmount != nil {
		if req.MaxDiscountAmount.IsNegative() {
			return nil, utils.ValidationError("Maximum discount amount must not be negative")
		}
		c.MaxDiscountAmount = req.MaxDiscountAmount
	}
	if req.UsageLimit != nil {
		if *req.UsageLimit < 0 {
			return nil, utils.ValidationError("Usage limit must not be negative")
		}
		c.UsageLimit = req.UsageLimit
	}
	if req.UsedCount != nil {
		if *req.UsedCount < 0 {
			return nil, utils.ValidationError("Used count must not be negative")
		}
		c.UsedCount = *req.UsedCount
	}
	if req.ValidFrom != nil {
		c.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		c.ValidTo = *req.ValidTo
	}
	if !c.ValidFrom.Before(c.ValidTo) {
		return nil, utils.ValidationError("Valid-to must be after valid-from")
	}
	if req.Status != "" {
		status, err := parseCouponStatus(req.Status)
		if err != nil {
			return nil, err
		}
		c.Status = status
	}

	if err := s.coupons.Update(c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Coupon code already exists")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// UpdateStatus sets only the lifecycle status of a coupon.
func (s *CouponService) UpdateStatus(id, status string) (*models.Coupon, error) {
	parsed, err := parseCouponStatus(status)
	if err != nil {
		return nil, err
	}

	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.coupons.UpdateStatus(id, parsed); err != nil {
		return nil, utils.InternalError(err)
	}
	c.Status = parsed
	return c, nil
}

// Delete removes a coupon after confirming it exists.
func (s *CouponService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.coupons.Delete(id); err != nil {
		return utils.InternalError(err)
	}
	return nil
}

// validateCouponValue enforces value > 0, and 1-100 for percentage coupons.
func validateCouponValue(ctype models.CouponType, value decimal.Decimal) error {
	if !value.IsPositive() {
		return utils.ValidationError("Coupon value must be greater than 0")
	}
	if ctype == models.CouponPercentage && value.GreaterThan(percentageMax) {
		return utils.ValidationError("Percentage value must be between 1 and 100")
	}
	return nil
}

// parseCouponStatus validates a status string against the enum.
func parseCouponStatus(status string) (models.CouponStatus, error) {
	switch models.CouponStatus(status) {
	case models.CouponActive, models.CouponInactive, models.CouponExpired:
		return models.CouponStatus(status), nil
	default:
		return "", utils.ValidationError("Status must be ACTIVE, INACTIVE or EXPIRED")
	}
}
