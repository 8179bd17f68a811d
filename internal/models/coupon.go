package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponType is the discount calculation mode.
type CouponType string

const (
	CouponPercentage  CouponType = "PERCENTAGE"
	CouponFixedAmount CouponType = "FIXED_AMOUNT"
)

// CouponStatus is the lifecycle state of a coupon.
type CouponStatus string

const (
	CouponActive   CouponStatus = "ACTIVE"
	CouponInactive CouponStatus = "INACTIVE"
	CouponExpired  CouponStatus = "EXPIRED"
)

// Coupon is a promotional code with a validity window and optional usage cap.
// Code is stored uppercase and unique.
type Coupon struct {
	ID                string           `db:"id" json:"id"`
	Code              string           `db:"code" json:"code"`
	Description       string           `db:"description" json:"description"`
	Type              CouponType       `db:"type" json:"type"`
	Value             decimal.Decimal  `db:"value" json:"value"`
	MinOrderAmount    decimal.Decimal  `db:"min_order_amount" json:"minOrderAmount"`
	MaxDiscountAmount *decimal.Decimal `db:"max_discount_amount" json:"maxDiscountAmount,omitempty"`
	UsageLimit        *int             `db:"usage_limit" json:"usageLimit,omitempty"`
	UsedCount         int              `db:"used_count" json:"usedCount"`
	ValidFrom         time.Time        `db:"valid_from" json:"validFrom"`
	ValidTo           time.Time        `db:"valid_to" json:"validTo"`
	Status            CouponStatus     `db:"status" json:"status"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updatedAt"`
}
