package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestPostgresClient_PingAndClose(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}
	mock.ExpectPing()
	mock.ExpectClose()

	assert.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetDB())
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db, 2*time.Second)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout = '2000ms'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE rides").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTx(ctx))
		_, err := Conn(ctx, db).ExecContext(ctx, "UPDATE rides SET status = 'full'")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db, 0)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_NestedCallJoinsOuterTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db, 0)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		return transactor.WithinTx(ctx, func(inner context.Context) error {
			assert.Equal(t, Conn(ctx, db), Conn(inner, db))
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_CommitSerializationFailureIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db, 0)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40001"})

	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error { return nil })

	assert.True(t, apperror.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit(t *testing.T) {
	t.Run("Runs after commit", func(t *testing.T) {
		db, mock := setupMockDB(t)
		transactor := NewTransactor(db, 0)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var events []string
		err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
			AfterCommit(ctx, func() { events = append(events, "ride.full") })
			return transactor.WithinTx(ctx, func(inner context.Context) error {
				AfterCommit(inner, func() { events = append(events, "order.issued") })
				assert.Empty(t, events)
				return nil
			})
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"ride.full", "order.issued"}, events)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Dropped on rollback", func(t *testing.T) {
		db, mock := setupMockDB(t)
		transactor := NewTransactor(db, 0)
		mock.ExpectBegin()
		mock.ExpectRollback()

		called := false
		err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
			AfterCommit(ctx, func() { called = true })
			return apperror.ErrRideFull
		})

		assert.ErrorIs(t, err, apperror.ErrRideFull)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Runs immediately outside a transaction", func(t *testing.T) {
		called := false
		AfterCommit(context.Background(), func() { called = true })
		assert.True(t, called)
	})
}

func TestConn_WithoutTransactionUsesDB(t *testing.T) {
	db, _ := setupMockDB(t)

	assert.Equal(t, Executor(db), Conn(context.Background(), db))
	assert.False(t, InTx(context.Background()))
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"lock not available", &pgconn.PgError{Code: "55P03"}, true},
		{"deadlock", fmt.Errorf("update: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"lib/pq serialization failure", &pq.Error{Code: "40001"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateError(tt.err)
			assert.Equal(t, tt.conflict, apperror.IsConflict(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, TranslateError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "user_coupons_account_coupon_key"}

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "user_coupons_account_coupon_key"))
	assert.False(t, IsUniqueViolation(err, "trip_orders_trip_request_id_key"))
	assert.False(t, IsUniqueViolation(errors.New("other"), ""))

	pqErr := &pq.Error{Code: "23505", Constraint: "reviews_order_id_reviewer_id_key"}
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pqErr), "reviews_order_id_reviewer_id_key"))
}
