package coupons

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
)

// CouponRepo persists coupon definitions and per-account claims
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/carpool/services/coupons CouponRepo
type CouponRepo interface {
	CreateCoupon(ctx context.Context, coupon *models.Coupon) error
	GetCoupon(ctx context.Context, couponID uuid.UUID) (*models.Coupon, error)
	ListValidCoupons(ctx context.Context, now time.Time) ([]*models.Coupon, error)

	CreateClaim(ctx context.Context, claim *models.UserCoupon) error
	ListClaims(ctx context.Context, accountID uuid.UUID) ([]*models.ClaimedCoupon, error)
	GetClaimForUpdate(ctx context.Context, claimID uuid.UUID) (*models.ClaimedCoupon, error)
	MarkClaimUsed(ctx context.Context, claimID uuid.UUID, usedAt time.Time) error
	ExpireClaims(ctx context.Context, now time.Time) (int64, error)
}
