package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
)

const (
	couponColumns = `id, name, description, discount_type, discount_value, min_spend, max_discount,
	valid_from, valid_until, created_by, created_at`

	claimSelect = `
		SELECT uc.id, uc.account_id, uc.coupon_id, uc.acquired_at, uc.used_at, uc.status,
			c.id AS "coupon.id", c.name AS "coupon.name", c.description AS "coupon.description",
			c.discount_type AS "coupon.discount_type", c.discount_value AS "coupon.discount_value",
			c.min_spend AS "coupon.min_spend", c.max_discount AS "coupon.max_discount",
			c.valid_from AS "coupon.valid_from", c.valid_until AS "coupon.valid_until",
			c.created_by AS "coupon.created_by", c.created_at AS "coupon.created_at"
		FROM user_coupons uc
		JOIN coupons c ON c.id = uc.coupon_id`

	constraintOneClaimPerAccount = "user_coupons_account_id_coupon_id_key"
)

// CouponRepo implements coupons.CouponRepo on Postgres
type CouponRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(cfg *models.Config, db *sqlx.DB) *CouponRepo {
	return &CouponRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateCoupon inserts a coupon definition
func (r *CouponRepo) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	defer nrpkg.StartDatastoreSegment(ctx, "coupons", "INSERT")()

	query := `
		INSERT INTO coupons (` + couponColumns + `)
		VALUES (:id, :name, :description, :discount_type, :discount_value, :min_spend, :max_discount,
			:valid_from, :valid_until, :created_by, :created_at)`

	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, coupon); err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// GetCoupon retrieves a coupon by ID
func (r *CouponRepo) GetCoupon(ctx context.Context, couponID uuid.UUID) (*models.Coupon, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "coupons", "SELECT")()

	var coupon models.Coupon
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`
	if err := database.Conn(ctx, r.db).GetContext(ctx, &coupon, query, couponID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return &coupon, nil
}

// ListValidCoupons lists coupons whose window contains now, ending soonest first
func (r *CouponRepo) ListValidCoupons(ctx context.Context, now time.Time) ([]*models.Coupon, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "coupons", "SELECT")()

	query := `SELECT ` + couponColumns + ` FROM coupons WHERE valid_from <= $1 AND valid_until >= $1 ORDER BY valid_until, id`

	coupons := []*models.Coupon{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &coupons, query, now); err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// CreateClaim records an account's claim. A second claim of the same coupon is rejected by a unique index.
func (r *CouponRepo) CreateClaim(ctx context.Context, claim *models.UserCoupon) error {
	defer nrpkg.StartDatastoreSegment(ctx, "user_coupons", "INSERT")()

	query := `
		INSERT INTO user_coupons (id, account_id, coupon_id, acquired_at, used_at, status)
		VALUES (:id, :account_id, :coupon_id, :acquired_at, :used_at, :status)`

	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, claim); err != nil {
		if database.IsUniqueViolation(err, constraintOneClaimPerAccount) {
			return apperror.ErrCouponAlreadyClaimed.Wrap(err)
		}
		return fmt.Errorf("failed to claim coupon: %w", err)
	}
	return nil
}

// ListClaims lists an account's claims with their coupons, newest first
func (r *CouponRepo) ListClaims(ctx context.Context, accountID uuid.UUID) ([]*models.ClaimedCoupon, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "user_coupons", "SELECT")()

	query := claimSelect + ` WHERE uc.account_id = $1 ORDER BY uc.acquired_at DESC, uc.id`

	claims := []*models.ClaimedCoupon{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &claims, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

// GetClaimForUpdate retrieves a claim with its coupon and locks the claim row
func (r *CouponRepo) GetClaimForUpdate(ctx context.Context, claimID uuid.UUID) (*models.ClaimedCoupon, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "user_coupons", "SELECT FOR UPDATE")()

	query := claimSelect + ` WHERE uc.id = $1 FOR UPDATE OF uc`

	var claim models.ClaimedCoupon
	if err := database.Conn(ctx, r.db).GetContext(ctx, &claim, query, claimID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", database.TranslateError(err))
	}
	return &claim, nil
}

// MarkClaimUsed redeems an active claim
func (r *CouponRepo) MarkClaimUsed(ctx context.Context, claimID uuid.UUID, usedAt time.Time) error {
	defer nrpkg.StartDatastoreSegment(ctx, "user_coupons", "UPDATE")()

	query := `UPDATE user_coupons SET status = $2, used_at = $3 WHERE id = $1 AND status = $4`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, claimID, models.UserCouponUsed, usedAt, models.UserCouponActive)
	if err != nil {
		return fmt.Errorf("failed to redeem coupon: %w", database.TranslateError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to redeem coupon: %w", err)
	}
	if rows == 0 {
		return apperror.ErrCouponNotUsable
	}
	return nil
}

// ExpireClaims marks active claims of coupons that ended before now as expired
func (r *CouponRepo) ExpireClaims(ctx context.Context, now time.Time) (int64, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "user_coupons", "UPDATE")()

	query := `
		UPDATE user_coupons uc
		SET status = $1
		FROM coupons c
		WHERE c.id = uc.coupon_id AND uc.status = $2 AND c.valid_until < $3`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, models.UserCouponExpired, models.UserCouponActive, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire claims: %w", err)
	}
	return result.RowsAffected()
}
