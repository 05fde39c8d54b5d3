package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/trips/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestCols = []string{
	"id", "passenger_id", "trip_type", "status", "pickup_location", "pickup_address", "pickup_geohash",
	"dropoff_location", "dropoff_address", "request_time", "scheduled_time", "seats_needed", "estimated_price",
	"pets_needed", "ride_id", "created_at", "updated_at",
}

var orderCols = []string{
	"id", "trip_request_id", "driver_id", "ride_id", "payment_status", "actual_price",
	"user_coupon_id", "discount_amount", "start_time", "end_time", "route", "passenger_rating",
	"passenger_comment", "driver_rating", "driver_comment", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*repository.TripRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })
	return repository.NewTripRepository(&models.Config{}, db), mock
}

func requestRow(rows *sqlmock.Rows, id, passengerID uuid.UUID, status models.TripRequestStatus) *sqlmock.Rows {
	now := time.Now().UTC().Truncate(time.Second)
	return rows.AddRow(id.String(), passengerID.String(), "carpool", string(status),
		[]byte(`{"lat":31.2304,"lng":121.4737}`), "Central Station", "wtw3sj",
		[]byte(`{"lat":31.1443,"lng":121.8083}`), "Airport", now, now.Add(time.Hour), int64(2), "18.50",
		false, nil, now, now)
}

func orderRow(rows *sqlmock.Rows, id, requestID, driverID uuid.UUID, extra ...driver.Value) *sqlmock.Rows {
	now := time.Now().UTC().Truncate(time.Second)
	values := []driver.Value{id.String(), requestID.String(), driverID.String(), nil, "pending", nil,
		nil, nil, now, nil, nil, nil, nil, nil, nil, now, now}
	values = append(values, extra...)
	return rows.AddRow(values...)
}

func TestCreateRequest(t *testing.T) {
	repo, mock := setupMockDB(t)
	seats := 2
	req := &models.TripRequest{
		ID: uuid.New(), PassengerID: uuid.New(), TripType: models.TripTypeCarpool, Status: models.TripRequestPending,
		PickupAddress: "Central Station", DropoffAddress: "Airport", SeatsNeeded: &seats,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trip_requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateRequest(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest(t *testing.T) {
	repo, mock := setupMockDB(t)
	id, passengerID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM trip_requests WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(requestRow(sqlmock.NewRows(requestCols), id, passengerID, models.TripRequestPending))

	req, err := repo.GetRequest(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, passengerID, req.PassengerID)
	assert.Equal(t, 31.2304, req.PickupLocation.Latitude)
	assert.Equal(t, 2, *req.SeatsNeeded)
	assert.True(t, req.EstimatedPrice.Decimal.Equal(decimal.RequireFromString("18.5")))
	assert.Nil(t, req.RideID)
}

func TestGetRequestForUpdate_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRequestForUpdate(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrRequestNotFound)
}

func TestListRequests(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.TripRequestFilter
		cells     []string
		wantQuery string
	}{
		{
			name:      "Pending taxi requests near a cell",
			filter:    models.TripRequestFilter{Status: models.TripRequestPending, TripType: models.TripTypeTaxi},
			cells:     []string{"wtw3sj", "wtw3sm"},
			wantQuery: "WHERE status = $1 AND trip_type = $2 AND LEFT(pickup_geohash, $3) = ANY($4) ORDER BY request_time, id",
		},
		{
			name:      "Status only",
			filter:    models.TripRequestFilter{Status: models.TripRequestPending},
			wantQuery: "FROM trip_requests WHERE status = $1 ORDER BY request_time, id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WillReturnRows(requestRow(sqlmock.NewRows(requestCols), uuid.New(), uuid.New(), models.TripRequestPending))

			list, err := repo.ListRequests(context.Background(), tt.filter, tt.cells)

			require.NoError(t, err)
			assert.Len(t, list, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkMatched(t *testing.T) {
	id, rideID := uuid.New(), uuid.New()

	t.Run("Pending request", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = $5")).
			WithArgs(id, "matched", &rideID, sqlmock.AnyArg(), "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkMatched(context.Background(), id, &rideID))
	})

	t.Run("Already matched", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkMatched(context.Background(), id, nil), apperror.ErrAlreadyMatched)
	})
}

func TestUpdateRequestStatus_WrongSource(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_requests SET status = $3")).
		WithArgs(id, "matched", "in_progress", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRequestStatus(context.Background(), id, models.TripRequestMatched, models.TripRequestInProgress)
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
}

func TestCreateOrder_DuplicateIsAlreadyMatched(t *testing.T) {
	repo, mock := setupMockDB(t)
	order := &models.TripOrder{ID: uuid.New(), TripRequestID: uuid.New(), DriverID: uuid.New(), PaymentStatus: models.PaymentPending}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trip_orders")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "trip_orders_trip_request_id_key"})

	err := repo.CreateOrder(context.Background(), order)
	assert.ErrorIs(t, err, apperror.ErrAlreadyMatched)
}

func TestGetOrderForUpdate(t *testing.T) {
	repo, mock := setupMockDB(t)
	id, requestID, driverID, passengerID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	cols := append(append([]string{}, orderCols...), "passenger_id", "trip_type", "trip_status")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE o.id = $1 FOR UPDATE OF o")).
		WithArgs(id).
		WillReturnRows(orderRow(sqlmock.NewRows(cols), id, requestID, driverID, passengerID.String(), "taxi", "completed"))

	order, err := repo.GetOrderForUpdate(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, passengerID, order.PassengerID)
	assert.Equal(t, driverID, order.DriverID)
	assert.Equal(t, models.TripRequestCompleted, order.TripStatus)
	assert.False(t, order.PassengerRating.Valid)
}

func TestFindActiveOrderForRide(t *testing.T) {
	passengerID, rideID := uuid.New(), uuid.New()

	t.Run("Found", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("r.passenger_id = $1 AND o.ride_id = $2 AND r.status <> $3")).
			WithArgs(passengerID, rideID, "cancelled").
			WillReturnRows(orderRow(sqlmock.NewRows(orderCols), uuid.New(), uuid.New(), uuid.New()))

		order, err := repo.FindActiveOrderForRide(context.Background(), passengerID, rideID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	})

	t.Run("None", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM trip_orders o")).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindActiveOrderForRide(context.Background(), passengerID, rideID)
		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}

func TestUpdateOrderPayment_Missing(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trip_orders SET payment_status = $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrderPayment(context.Background(), uuid.New(), models.PaymentCancelled)
	assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
}

func TestRateOrder(t *testing.T) {
	tests := []struct {
		name        string
		byPassenger bool
		wantQuery   string
		affected    int64
		wantErr     error
	}{
		{name: "Passenger side", byPassenger: true, wantQuery: "WHERE id = $1 AND passenger_rating IS NULL", affected: 1},
		{name: "Driver side", byPassenger: false, wantQuery: "WHERE id = $1 AND driver_rating IS NULL", affected: 1},
		{name: "Rated twice", byPassenger: true, wantQuery: "passenger_rating IS NULL", affected: 0, wantErr: apperror.ErrAlreadyRated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			id := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(id, sqlmock.AnyArg(), "on time", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.RateOrder(context.Background(), id, tt.byPassenger, decimal.RequireFromString("4.5"), "on time")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListOrders(t *testing.T) {
	passengerID, driverID := uuid.New(), uuid.New()

	t.Run("Passenger and driver scopes", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		cols := append(append([]string{}, orderCols...), "passenger_id", "trip_type", "trip_status")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.passenger_id = $1 OR o.driver_id = $2 ORDER BY o.created_at DESC, o.id")).
			WithArgs(passengerID, driverID).
			WillReturnRows(orderRow(sqlmock.NewRows(cols), uuid.New(), uuid.New(), driverID, passengerID.String(), "carpool", "matched"))

		orders, err := repo.ListOrders(context.Background(), models.OrderFilter{PassengerID: &passengerID, DriverID: &driverID})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, models.TripTypeCarpool, orders[0].TripType)
	})

	t.Run("No scope", func(t *testing.T) {
		repo, mock := setupMockDB(t)

		orders, err := repo.ListOrders(context.Background(), models.OrderFilter{})

		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
