package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/pkg/observability"
	"github.com/piresc/carpool/services/coupons"
	"github.com/shopspring/decimal"
)

// couponUC implements coupons.CouponUC
type couponUC struct {
	repo       coupons.CouponRepo
	transactor database.Transactor
	metrics    *observability.Metrics
}

// NewCouponUC creates the coupon resolver
func NewCouponUC(repo coupons.CouponRepo, transactor database.Transactor, metrics *observability.Metrics) coupons.CouponUC {
	return &couponUC{
		repo:       repo,
		transactor: transactor,
		metrics:    metrics,
	}
}

// ListAvailable returns the account's claims and every coupon valid at now.
// Claims on coupons that ended before now are expired first so they never show as active.
func (uc *couponUC) ListAvailable(ctx context.Context, accountID uuid.UUID, now time.Time) (*models.CouponListing, error) {
	if _, err := uc.ExpireClaims(ctx, now); err != nil {
		return nil, err
	}
	mine, err := uc.repo.ListClaims(ctx, accountID)
	if err != nil {
		return nil, err
	}
	available, err := uc.repo.ListValidCoupons(ctx, now)
	if err != nil {
		return nil, err
	}
	return &models.CouponListing{MyCoupons: mine, Available: available}, nil
}

// Claim gives the account an active claim on a coupon that is currently valid
func (uc *couponUC) Claim(ctx context.Context, accountID, couponID uuid.UUID) (*models.UserCoupon, error) {
	defer nrpkg.StartSegment(ctx, "CouponUC.Claim")()

	coupon, err := uc.repo.GetCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}
	now := models.Now()
	if !coupon.ValidAt(now) {
		return nil, apperror.ErrCouponNotUsable.WithMessage("coupon %s is outside its validity window", couponID)
	}

	claim := &models.UserCoupon{
		ID:         uuid.New(),
		AccountID:  accountID,
		CouponID:   couponID,
		AcquiredAt: now,
		Status:     models.UserCouponActive,
	}
	if err := uc.repo.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	uc.metrics.CouponClaimed()
	logger.InfoCtx(ctx, "Coupon claimed",
		logger.UUID("coupon_id", couponID),
		logger.UUID("account_id", accountID))
	return claim, nil
}

// Resolve checks the claim can pay towards amount and redeems it
func (uc *couponUC) Resolve(ctx context.Context, accountID, claimID uuid.UUID, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	defer nrpkg.StartSegment(ctx, "CouponUC.Resolve")()

	var discount decimal.Decimal
	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		claim, err := uc.repo.GetClaimForUpdate(ctx, claimID)
		if err != nil {
			return err
		}
		if claim.AccountID != accountID {
			return apperror.ErrCouponNotFound
		}
		if claim.Status != models.UserCouponActive {
			return apperror.ErrCouponNotUsable.WithMessage("coupon is %s", claim.Status)
		}
		if !claim.Coupon.ValidAt(now) {
			return apperror.ErrCouponNotUsable.WithMessage("coupon is outside its validity window")
		}
		if amount.LessThan(claim.Coupon.MinSpend) {
			return apperror.ErrCouponNotUsable.WithMessage("minimum spend is %s", claim.Coupon.MinSpend.StringFixed(2))
		}

		if err := uc.repo.MarkClaimUsed(ctx, claimID, now); err != nil {
			return err
		}
		discount = claim.Coupon.Discount(amount)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return discount, nil
}

// CreateCoupon defines a new platform coupon
func (uc *couponUC) CreateCoupon(ctx context.Context, createdBy uuid.UUID, req models.CreateCouponRequest) (*models.Coupon, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("name is required")
	}
	if !req.DiscountValue.IsPositive() {
		return nil, apperror.Validation("discount_value must be positive")
	}
	if req.DiscountType == models.DiscountPercentage && req.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperror.Validation("a percentage discount cannot exceed 100")
	}
	if req.MinSpend.IsNegative() {
		return nil, apperror.Validation("min_spend cannot be negative")
	}
	if req.MaxDiscount != nil && !req.MaxDiscount.IsPositive() {
		return nil, apperror.Validation("max_discount must be positive")
	}
	if !req.ValidUntil.After(req.ValidFrom) {
		return nil, apperror.Validation("valid_until must be after valid_from")
	}

	coupon := &models.Coupon{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinSpend:      req.MinSpend,
		ValidFrom:     req.ValidFrom.UTC(),
		ValidUntil:    req.ValidUntil.UTC(),
		CreatedBy:     &createdBy,
		CreatedAt:     models.Now(),
	}
	if req.MaxDiscount != nil {
		coupon.MaxDiscount = decimal.NewNullDecimal(*req.MaxDiscount)
	}

	if err := uc.repo.CreateCoupon(ctx, coupon); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Coupon created", logger.UUID("coupon_id", coupon.ID), logger.String("name", coupon.Name))
	return coupon, nil
}

// ExpireClaims retires claims on coupons that have ended
func (uc *couponUC) ExpireClaims(ctx context.Context, now time.Time) (int64, error) {
	n, err := uc.repo.ExpireClaims(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.InfoCtx(ctx, "Expired coupon claims", logger.Int64("count", n))
	}
	return n, nil
}
