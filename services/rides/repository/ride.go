package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
)

const rideColumns = `id, driver_id, start_location, end_location, departure_time,
	total_seats, available_seats, price_per_seat, status, created_at, updated_at`

// RideRepo implements rides.RideRepo on Postgres
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a newly published ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "INSERT")()

	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES (:id, :driver_id, :start_location, :end_location, :departure_time,
			:total_seats, :available_seats, :price_per_seat, :status, :created_at, :updated_at)`

	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, ride); err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRideForUpdate retrieves a ride and locks its row for the rest of the transaction.
// NOWAIT turns contention into an immediate conflict that the caller retries.
func (r *RideRepo) GetRideForUpdate(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT FOR UPDATE")()

	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 FOR UPDATE NOWAIT`
	return r.getOne(ctx, query, rideID)
}

// FindMatchingRide returns the oldest open ride of the driver with exactly this route and departure, locked for update
func (r *RideRepo) FindMatchingRide(ctx context.Context, driverID uuid.UUID, start, end string, departure time.Time) (*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT FOR UPDATE")()

	query := `
		SELECT ` + rideColumns + `
		FROM rides
		WHERE driver_id = $1
		  AND start_location = $2
		  AND end_location = $3
		  AND departure_time = $4
		  AND status = $5
		ORDER BY created_at, id
		LIMIT 1
		FOR UPDATE`

	var ride models.Ride
	err := database.Conn(ctx, r.db).GetContext(ctx, &ride, query, driverID, start, end, departure, models.RideStatusOpen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrNoMatchingRide
		}
		return nil, fmt.Errorf("failed to find matching ride: %w", database.TranslateError(err))
	}
	return &ride, nil
}

// UpdateSeats writes the seat counter and status of a locked ride
func (r *RideRepo) UpdateSeats(ctx context.Context, rideID uuid.UUID, availableSeats int, status models.RideStatus) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "UPDATE")()

	query := `UPDATE rides SET available_seats = $2, status = $3, updated_at = $4 WHERE id = $1`
	return r.execOne(ctx, "update ride seats", query, rideID, availableSeats, status, models.Now())
}

// UpdateStatus changes the status of a ride
func (r *RideRepo) UpdateStatus(ctx context.Context, rideID uuid.UUID, status models.RideStatus) error {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "UPDATE")()

	query := `UPDATE rides SET status = $2, updated_at = $3 WHERE id = $1`
	return r.execOne(ctx, "update ride status", query, rideID, status, models.Now())
}

// ListRides lists rides by status and optionally by driver, earliest departure first
func (r *RideRepo) ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "rides", "SELECT")()

	var (
		conditions []string
		args       []interface{}
	)
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.DriverID != nil {
		args = append(args, *filter.DriverID)
		conditions = append(conditions, fmt.Sprintf("driver_id = $%d", len(args)))
	}

	query := `SELECT ` + rideColumns + ` FROM rides`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY departure_time, id`

	rides := []*models.Ride{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &rides, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return rides, nil
}

func (r *RideRepo) getOne(ctx context.Context, query string, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	if err := database.Conn(ctx, r.db).GetContext(ctx, &ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", database.TranslateError(err))
	}
	return &ride, nil
}

func (r *RideRepo) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, database.TranslateError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if rows == 0 {
		return apperror.ErrRideNotFound
	}
	return nil
}
