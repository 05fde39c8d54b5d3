package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/coupons/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var claimCols = []string{
	"id", "account_id", "coupon_id", "acquired_at", "used_at", "status",
	"coupon.id", "coupon.name", "coupon.description", "coupon.discount_type", "coupon.discount_value",
	"coupon.min_spend", "coupon.max_discount", "coupon.valid_from", "coupon.valid_until",
	"coupon.created_by", "coupon.created_at",
}

func setupMockDB(t *testing.T) (*repository.CouponRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })
	return repository.NewCouponRepository(&models.Config{}, db), mock
}

func TestGetCoupon_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE id = $1")).WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCoupon(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrCouponNotFound)
}

func TestListValidCoupons(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now().UTC()
	cols := []string{"id", "name", "description", "discount_type", "discount_value", "min_spend", "max_discount",
		"valid_from", "valid_until", "created_by", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE valid_from <= $1 AND valid_until >= $1 ORDER BY valid_until, id")).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.NewString(), "Spring", "", "percentage", "10", "20", "8", now.Add(-time.Hour), now.Add(time.Hour), nil, now))

	list, err := repo.ListValidCoupons(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.DiscountPercentage, list[0].DiscountType)
	assert.True(t, list[0].MaxDiscount.Decimal.Equal(decimal.NewFromInt(8)))
}

func TestCreateClaim_Duplicate(t *testing.T) {
	repo, mock := setupMockDB(t)
	claim := &models.UserCoupon{ID: uuid.New(), AccountID: uuid.New(), CouponID: uuid.New(), Status: models.UserCouponActive}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_coupons")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "user_coupons_account_id_coupon_id_key"})

	err := repo.CreateClaim(context.Background(), claim)
	assert.ErrorIs(t, err, apperror.ErrCouponAlreadyClaimed)
}

func TestGetClaimForUpdate_MapsCoupon(t *testing.T) {
	repo, mock := setupMockDB(t)
	claimID, accountID, couponID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE uc.id = $1 FOR UPDATE OF uc")).
		WithArgs(claimID).
		WillReturnRows(sqlmock.NewRows(claimCols).AddRow(
			claimID.String(), accountID.String(), couponID.String(), now, nil, "active",
			couponID.String(), "Spring", "", "fixed_amount", "5", "20", nil, now.Add(-time.Hour), now.Add(time.Hour), nil, now))

	claim, err := repo.GetClaimForUpdate(context.Background(), claimID)

	require.NoError(t, err)
	assert.Equal(t, accountID, claim.AccountID)
	assert.Equal(t, couponID, claim.Coupon.ID)
	assert.Equal(t, models.UserCouponActive, claim.Status)
	assert.True(t, claim.Coupon.MinSpend.Equal(decimal.NewFromInt(20)))
	assert.False(t, claim.Coupon.MaxDiscount.Valid)
}

func TestMarkClaimUsed(t *testing.T) {
	claimID := uuid.New()
	usedAt := time.Now().UTC()

	t.Run("Active claim", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE user_coupons SET status = $2, used_at = $3 WHERE id = $1 AND status = $4")).
			WithArgs(claimID, "used", usedAt, "active").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkClaimUsed(context.Background(), claimID, usedAt))
	})

	t.Run("No longer active", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE user_coupons")).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkClaimUsed(context.Background(), claimID, usedAt), apperror.ErrCouponNotUsable)
	})
}

func TestExpireClaims(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("c.valid_until < $3")).
		WithArgs("expired", "active", now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.ExpireClaims(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
