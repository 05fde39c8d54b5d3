package coupons

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// CouponUC lists, claims and redeems platform coupons
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/carpool/services/coupons CouponUC
type CouponUC interface {
	ListAvailable(ctx context.Context, accountID uuid.UUID, now time.Time) (*models.CouponListing, error)
	Claim(ctx context.Context, accountID, couponID uuid.UUID) (*models.UserCoupon, error)

	// Resolve computes the discount a claim grants on amount and marks the claim used.
	// It joins the caller's transaction so the discount and the order update commit together.
	Resolve(ctx context.Context, accountID, claimID uuid.UUID, amount decimal.Decimal, now time.Time) (decimal.Decimal, error)

	CreateCoupon(ctx context.Context, createdBy uuid.UUID, req models.CreateCouponRequest) (*models.Coupon, error)
	ExpireClaims(ctx context.Context, now time.Time) (int64, error)
}
