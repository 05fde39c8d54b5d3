package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/rides/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rideCols = []string{
	"id", "driver_id", "start_location", "end_location", "departure_time",
	"total_seats", "available_seats", "price_per_seat", "status", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func rideRow(rows *sqlmock.Rows, ride models.Ride) *sqlmock.Rows {
	return rows.AddRow(ride.ID.String(), ride.DriverID.String(), ride.StartLocation, ride.EndLocation,
		ride.DepartureTime, ride.TotalSeats, ride.AvailableSeats, nil, string(ride.Status), ride.CreatedAt, ride.UpdatedAt)
}

func sampleRide() models.Ride {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Ride{
		ID:             uuid.New(),
		DriverID:       uuid.New(),
		StartLocation:  "Central",
		EndLocation:    "Airport",
		DepartureTime:  now.Add(time.Hour),
		TotalSeats:     3,
		AvailableSeats: 2,
		Status:         models.RideStatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	ride := sampleRide()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WithArgs(ride.ID, ride.DriverID, ride.StartLocation, ride.EndLocation, ride.DepartureTime,
			ride.TotalSeats, ride.AvailableSeats, sqlmock.AnyArg(), ride.Status, ride.CreatedAt, ride.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRide(context.Background(), &ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRide_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	ride := sampleRide()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).WillReturnError(assert.AnError)

	err := repo.CreateRide(context.Background(), &ride)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to create ride")
}

func TestGetRideForUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	ride := sampleRide()

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1 FOR UPDATE NOWAIT")).
		WithArgs(ride.ID).
		WillReturnRows(rideRow(sqlmock.NewRows(rideCols), ride))

	got, err := repo.GetRideForUpdate(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.Equal(t, ride.ID, got.ID)
	assert.Equal(t, 2, got.AvailableSeats)
	assert.Equal(t, models.RideStatusOpen, got.Status)
	assert.False(t, got.PricePerSeat.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideForUpdate_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(rideCols))

	_, err := repo.GetRideForUpdate(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrRideNotFound)
}

func TestGetRideForUpdate_LockNotAvailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE NOWAIT")).
		WithArgs(id).
		WillReturnError(&pgconn.PgError{Code: "55P03", Message: "could not obtain lock on row"})

	_, err := repo.GetRideForUpdate(context.Background(), id)
	assert.True(t, apperror.IsConflict(err))
}

func TestFindMatchingRide(t *testing.T) {
	ride := sampleRide()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "Match",
			rows: rideRow(sqlmock.NewRows(rideCols), ride),
		},
		{
			name:    "No match",
			rows:    sqlmock.NewRows(rideCols),
			wantErr: apperror.ErrNoMatchingRide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewRideRepository(&models.Config{}, db)

			mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at, id")).
				WithArgs(ride.DriverID, "Central", "Airport", ride.DepartureTime, models.RideStatusOpen).
				WillReturnRows(tt.rows)

			got, err := repo.FindMatchingRide(context.Background(), ride.DriverID, "Central", "Airport", ride.DepartureTime)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ride.ID, got.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateSeats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET available_seats = $2, status = $3")).
		WithArgs(id, 0, models.RideStatusFull, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateSeats(context.Background(), id, 0, models.RideStatusFull)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET status = $2")).
		WithArgs(id, models.RideStatusCanceled, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, models.RideStatusCanceled)
	assert.ErrorIs(t, err, apperror.ErrRideNotFound)
}

func TestListRides(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)
	driverID := uuid.New()
	first, second := sampleRide(), sampleRide()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ANY($1) AND driver_id = $2 ORDER BY departure_time, id")).
		WithArgs(sqlmock.AnyArg(), driverID).
		WillReturnRows(rideRow(rideRow(sqlmock.NewRows(rideCols), first), second))

	list, err := repo.ListRides(context.Background(), models.RideFilter{
		Statuses: []models.RideStatus{models.RideStatusOpen},
		DriverID: &driverID,
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRides_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides ORDER BY departure_time, id")).
		WillReturnRows(sqlmock.NewRows(rideCols))

	list, err := repo.ListRides(context.Background(), models.RideFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
