package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
)

const constraintOneReviewPerReviewer = "reviews_order_id_reviewer_id_key"

// ReviewRepo implements reviews.ReviewRepo on Postgres
type ReviewRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(cfg *models.Config, db *sqlx.DB) *ReviewRepo {
	return &ReviewRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetOrder reads the parties and trip status of an order
func (r *ReviewRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.OrderWithRequest, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "trip_orders", "SELECT")()

	query := `
		SELECT o.id, o.trip_request_id, o.driver_id, o.payment_status, o.created_at, o.updated_at,
			r.passenger_id, r.trip_type, r.status AS trip_status
		FROM trip_orders o
		JOIN trip_requests r ON r.id = o.trip_request_id
		WHERE o.id = $1`

	var order models.OrderWithRequest
	if err := database.Conn(ctx, r.db).GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// CreateReview inserts a review; a reviewer gets one review per order
func (r *ReviewRepo) CreateReview(ctx context.Context, review *models.Review) error {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "INSERT")()

	query := `
		INSERT INTO reviews (id, order_id, reviewer_id, reviewee_id, rating, comment, created_at)
		VALUES (:id, :order_id, :reviewer_id, :reviewee_id, :rating, :comment, :created_at)`

	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.db), query, review); err != nil {
		if database.IsUniqueViolation(err, constraintOneReviewPerReviewer) {
			return apperror.ErrAlreadyReviewed.Wrap(err)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListReviewsFor lists the reviews an account received, newest first
func (r *ReviewRepo) ListReviewsFor(ctx context.Context, revieweeID uuid.UUID) ([]*models.Review, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "reviews", "SELECT")()

	query := `
		SELECT id, order_id, reviewer_id, reviewee_id, rating, comment, created_at
		FROM reviews
		WHERE reviewee_id = $1
		ORDER BY created_at DESC, id`

	list := []*models.Review{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &list, query, revieweeID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return list, nil
}
