package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a coupon's value is applied
type DiscountType string

const (
	DiscountFixedAmount DiscountType = "fixed_amount"
	DiscountPercentage  DiscountType = "percentage"
)

// UserCouponStatus is the state of a claimed coupon
type UserCouponStatus string

const (
	UserCouponActive  UserCouponStatus = "active"
	UserCouponUsed    UserCouponStatus = "used"
	UserCouponExpired UserCouponStatus = "expired"
)

// Coupon is a platform discount definition
type Coupon struct {
	ID            uuid.UUID           `json:"id" db:"id"`
	Name          string              `json:"name" db:"name"`
	Description   string              `json:"description" db:"description"`
	DiscountType  DiscountType        `json:"discount_type" db:"discount_type"`
	DiscountValue decimal.Decimal     `json:"discount_value" db:"discount_value"`
	MinSpend      decimal.Decimal     `json:"min_spend" db:"min_spend"`
	MaxDiscount   decimal.NullDecimal `json:"max_discount" db:"max_discount"`
	ValidFrom     time.Time           `json:"valid_from" db:"valid_from"`
	ValidUntil    time.Time           `json:"valid_until" db:"valid_until"`
	CreatedBy     *uuid.UUID          `json:"created_by,omitempty" db:"created_by"`
	CreatedAt     time.Time           `json:"created_at" db:"created_at"`
}

// ValidAt reports whether the coupon window contains t (inclusive on both ends)
func (c *Coupon) ValidAt(t time.Time) bool {
	return !t.Before(c.ValidFrom) && !t.After(c.ValidUntil)
}

// Discount computes the reduction the coupon grants on amount, assuming it is applicable
func (c *Coupon) Discount(amount decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = amount.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
		if c.MaxDiscount.Valid && discount.GreaterThan(c.MaxDiscount.Decimal) {
			discount = c.MaxDiscount.Decimal
		}
	default:
		discount = c.DiscountValue
	}
	if discount.GreaterThan(amount) {
		discount = amount
	}
	if discount.IsNegative() {
		return decimal.Zero
	}
	return discount
}

// UserCoupon is a per-account claim of a coupon
type UserCoupon struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	AccountID  uuid.UUID        `json:"account_id" db:"account_id"`
	CouponID   uuid.UUID        `json:"coupon_id" db:"coupon_id"`
	AcquiredAt time.Time        `json:"acquired_at" db:"acquired_at"`
	UsedAt     *time.Time       `json:"used_at,omitempty" db:"used_at"`
	Status     UserCouponStatus `json:"status" db:"status"`
}

// ClaimedCoupon is a claim joined with the coupon definition it refers to
type ClaimedCoupon struct {
	UserCoupon
	Coupon Coupon `json:"coupon" db:"coupon"`
}

// CouponListing groups the caller's claims and the coupons currently on offer
type CouponListing struct {
	MyCoupons []*ClaimedCoupon `json:"my_coupons"`
	Available []*Coupon        `json:"available"`
}

// CreateCouponRequest is the payload used to define a platform coupon
type CreateCouponRequest struct {
	Name          string           `json:"name" validate:"required,max=100"`
	Description   string           `json:"description"`
	DiscountType  DiscountType     `json:"discount_type" validate:"required,oneof=fixed_amount percentage"`
	DiscountValue decimal.Decimal  `json:"discount_value"`
	MinSpend      decimal.Decimal  `json:"min_spend"`
	MaxDiscount   *decimal.Decimal `json:"max_discount,omitempty"`
	ValidFrom     time.Time        `json:"valid_from" validate:"required"`
	ValidUntil    time.Time        `json:"valid_until" validate:"required"`
}
