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
	"github.com/shopspring/decimal"
)

const (
	requestColumns = `id, passenger_id, trip_type, status, pickup_location, pickup_address, pickup_geohash,
	dropoff_location, dropoff_address, request_time, scheduled_time, seats_needed, estimated_price,
	pets_needed, ride_id, created_at, updated_at`

	orderColumns = `o.id, o.trip_request_id, o.driver_id, o.ride_id, o.payment_status, o.actual_price,
	o.user_coupon_id, o.discount_amount, o.start_time, o.end_time, o.route, o.passenger_rating,
	o.passenger_comment, o.driver_rating, o.driver_comment, o.created_at, o.updated_at`

	orderWithRequestSelect = `SELECT ` + orderColumns + `, r.passenger_id, r.trip_type, r.status AS trip_status
	FROM trip_orders o
	JOIN trip_requests r ON r.id = o.trip_request_id`

	constraintOneOrderPerRequest = "trip_orders_trip_request_id_key"
)

// TripRepo implements trips.TripRepo on Postgres
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRequest inserts a trip request
func (r *TripRepo) CreateRequest(ctx context.Context, req *models.TripRequest) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "INSERT")()

	query := `
		INSERT INTO trip_requests (` + requestColumns + `)
		VALUES (:id, :passenger_id, :trip_type, :status, :pickup_location, :pickup_address, :pickup_geohash,
			:dropoff_location, :dropoff_address, :request_time, :scheduled_time, :seats_needed, :estimated_price,
			:pets_needed, :ride_id, :created_at, :updated_at)`

	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, req); err != nil {
		return fmt.Errorf("failed to create trip request: %w", err)
	}
	return nil
}

// GetRequest retrieves a trip request by ID
func (r *TripRepo) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.TripRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "SELECT")()

	return r.getRequest(ctx, `SELECT `+requestColumns+` FROM trip_requests WHERE id = $1`, requestID)
}

// GetRequestForUpdate retrieves a trip request and locks it for the rest of the transaction
func (r *TripRepo) GetRequestForUpdate(ctx context.Context, requestID uuid.UUID) (*models.TripRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "SELECT FOR UPDATE")()

	return r.getRequest(ctx, `SELECT `+requestColumns+` FROM trip_requests WHERE id = $1 FOR UPDATE`, requestID)
}

// ListPassengerRequests lists a passenger's requests, newest first
func (r *TripRepo) ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]*models.TripRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "SELECT")()

	query := `SELECT ` + requestColumns + ` FROM trip_requests WHERE passenger_id = $1 ORDER BY request_time DESC, id`

	requests := []*models.TripRequest{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &requests, query, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list passenger requests: %w", err)
	}
	return requests, nil
}

// ListRequests lists requests for the driver queue, oldest first. Non-empty cells restrict
// the queue to requests whose pickup geohash falls in one of them.
func (r *TripRepo) ListRequests(ctx context.Context, filter models.TripRequestFilter, cells []string) ([]*models.TripRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "SELECT")()

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.TripType != "" {
		args = append(args, filter.TripType)
		conditions = append(conditions, fmt.Sprintf("trip_type = $%d", len(args)))
	}
	if len(cells) > 0 {
		args = append(args, len(cells[0]), pq.Array(cells))
		conditions = append(conditions, fmt.Sprintf("LEFT(pickup_geohash, $%d) = ANY($%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + requestColumns + ` FROM trip_requests`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY request_time, id`

	requests := []*models.TripRequest{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trip requests: %w", err)
	}
	return requests, nil
}

// MarkMatched is the issuance guard: only a pending request can become matched
func (r *TripRepo) MarkMatched(ctx context.Context, requestID uuid.UUID, rideID *uuid.UUID) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "UPDATE")()

	query := `
		UPDATE trip_requests
		SET status = $2, ride_id = COALESCE($3, ride_id), updated_at = $4
		WHERE id = $1 AND status = $5`

	rows, err := r.exec(ctx, "mark request matched", query,
		requestID, models.TripRequestMatched, rideID, models.Now(), models.TripRequestPending)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.ErrAlreadyMatched
	}
	return nil
}

// UpdateRequestStatus moves a request between statuses
func (r *TripRepo) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, from, to models.TripRequestStatus) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_requests", "UPDATE")()

	query := `UPDATE trip_requests SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`

	rows, err := r.exec(ctx, "update request status", query, requestID, from, to, models.Now())
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.ErrInvalidTransition.WithMessage("trip request is not %s", from)
	}
	return nil
}

// CreateOrder inserts an order. The unique index on trip_request_id backs up the status guard.
func (r *TripRepo) CreateOrder(ctx context.Context, order *models.TripOrder) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "INSERT")()

	query := `
		INSERT INTO trip_orders (id, trip_request_id, driver_id, ride_id, payment_status, start_time, created_at, updated_at)
		VALUES (:id, :trip_request_id, :driver_id, :ride_id, :payment_status, :start_time, :created_at, :updated_at)`

	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, order); err != nil {
		if database.IsUniqueViolation(err, constraintOneOrderPerRequest) {
			return apperror.ErrAlreadyMatched.Wrap(err)
		}
		return fmt.Errorf("failed to create order: %w", database.TranslateError(err))
	}
	return nil
}

// GetOrderByRequest retrieves the order issued for a request
func (r *TripRepo) GetOrderByRequest(ctx context.Context, requestID uuid.UUID) (*models.TripOrder, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "SELECT")()

	query := `SELECT ` + orderColumns + ` FROM trip_orders o WHERE o.trip_request_id = $1`

	var order models.TripOrder
	if err := database.Conn(ctx, r.db).GetContext(ctx, &order, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", database.TranslateError(err))
	}
	return &order, nil
}

// GetOrderForUpdate retrieves an order with its request's passenger and status, locking the order row
func (r *TripRepo) GetOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*models.OrderWithRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "SELECT FOR UPDATE")()

	query := orderWithRequestSelect + ` WHERE o.id = $1 FOR UPDATE OF o`

	var order models.OrderWithRequest
	if err := database.Conn(ctx, r.db).GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", database.TranslateError(err))
	}
	return &order, nil
}

// FindActiveOrderForRide returns the passenger's order on a ride whose request was not cancelled
func (r *TripRepo) FindActiveOrderForRide(ctx context.Context, passengerID, rideID uuid.UUID) (*models.TripOrder, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "SELECT")()

	query := `
		SELECT ` + orderColumns + `
		FROM trip_orders o
		JOIN trip_requests r ON r.id = o.trip_request_id
		WHERE r.passenger_id = $1 AND o.ride_id = $2 AND r.status <> $3
		ORDER BY o.created_at, o.id
		LIMIT 1`

	var order models.TripOrder
	err := database.Conn(ctx, r.db).GetContext(ctx, &order, query, passengerID, rideID, models.TripRequestCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order for ride: %w", database.TranslateError(err))
	}
	return &order, nil
}

// UpdateOrderPayment sets the payment status of an order
func (r *TripRepo) UpdateOrderPayment(ctx context.Context, orderID uuid.UUID, status models.PaymentStatus) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "UPDATE")()

	query := `UPDATE trip_orders SET payment_status = $2, updated_at = $3 WHERE id = $1`
	return r.execOrder(ctx, "update order payment", query, orderID, status, models.Now())
}

// StartOrder records when the trip began, keeping an earlier start time
func (r *TripRepo) StartOrder(ctx context.Context, orderID uuid.UUID, startTime time.Time) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "UPDATE")()

	query := `UPDATE trip_orders SET start_time = COALESCE(start_time, $2), updated_at = $3 WHERE id = $1`
	return r.execOrder(ctx, "start order", query, orderID, startTime, models.Now())
}

// CompleteOrder writes what the driver reported at drop-off
func (r *TripRepo) CompleteOrder(ctx context.Context, order *models.TripOrder) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "UPDATE")()

	query := `
		UPDATE trip_orders
		SET end_time = :end_time, route = :route, actual_price = :actual_price,
			user_coupon_id = :user_coupon_id, discount_amount = :discount_amount, updated_at = :updated_at
		WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, order)
	if err != nil {
		return fmt.Errorf("failed to complete order: %w", database.TranslateError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete order: %w", err)
	}
	if rows == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

// RateOrder stores one side's rating. Each side can rate only once.
func (r *TripRepo) RateOrder(ctx context.Context, orderID uuid.UUID, byPassenger bool, rating decimal.Decimal, comment string) error {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "UPDATE")()

	query := `
		UPDATE trip_orders
		SET driver_rating = $2, driver_comment = $3, updated_at = $4
		WHERE id = $1 AND driver_rating IS NULL`
	if byPassenger {
		query = `
		UPDATE trip_orders
		SET passenger_rating = $2, passenger_comment = $3, updated_at = $4
		WHERE id = $1 AND passenger_rating IS NULL`
	}

	rows, err := r.exec(ctx, "rate order", query, orderID, rating, comment, models.Now())
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.ErrAlreadyRated
	}
	return nil
}

// ListOrders lists the orders visible to a passenger, a driver, or both, newest first
func (r *TripRepo) ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.OrderWithRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "SELECT")()

	var (
		scopes []string
		args   []interface{}
	)
	if filter.PassengerID != nil {
		args = append(args, *filter.PassengerID)
		scopes = append(scopes, fmt.Sprintf("r.passenger_id = $%d", len(args)))
	}
	if filter.DriverID != nil {
		args = append(args, *filter.DriverID)
		scopes = append(scopes, fmt.Sprintf("o.driver_id = $%d", len(args)))
	}

	orders := []*models.OrderWithRequest{}
	if len(scopes) == 0 {
		return orders, nil
	}

	query := orderWithRequestSelect + ` WHERE ` + strings.Join(scopes, " OR ") + ` ORDER BY o.created_at DESC, o.id`
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *TripRepo) getRequest(ctx context.Context, query string, requestID uuid.UUID) (*models.TripRequest, error) {
	var req models.TripRequest
	if err := database.Conn(ctx, r.db).GetContext(ctx, &req, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get trip request: %w", database.TranslateError(err))
	}
	return &req, nil
}

func (r *TripRepo) exec(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to %s: %w", op, database.TranslateError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to %s: %w", op, err)
	}
	return rows, nil
}

func (r *TripRepo) execOrder(ctx context.Context, op, query string, args ...interface{}) error {
	rows, err := r.exec(ctx, op, query, args...)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}
