package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/piresc/carpool/services/reviews"
)

type reviewUC struct {
	repo reviews.ReviewRepo
}

// NewReviewUC creates the review use case
func NewReviewUC(repo reviews.ReviewRepo) reviews.ReviewUC {
	return &reviewUC{repo: repo}
}

// SubmitReview records the reviewer's review of the other party of a completed order
func (uc *reviewUC) SubmitReview(ctx context.Context, reviewerID uuid.UUID, req models.SubmitReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.Validation("rating must be between 1 and 5")
	}

	order, err := uc.repo.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	var revieweeID uuid.UUID
	switch reviewerID {
	case order.PassengerID:
		revieweeID = order.DriverID
	case order.DriverID:
		revieweeID = order.PassengerID
	default:
		return nil, apperror.ErrOrderNotFound
	}
	if order.TripStatus != models.TripRequestCompleted {
		return nil, apperror.ErrInvalidTransition.WithMessage("only completed trips can be reviewed")
	}

	review := &models.Review{
		ID:         uuid.New(),
		OrderID:    req.OrderID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		CreatedAt:  models.Now(),
	}
	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Review submitted",
		logger.UUID("order_id", req.OrderID),
		logger.UUID("reviewer_id", reviewerID),
		logger.Int("rating", req.Rating))
	return review, nil
}

// ListReviewsFor lists the reviews an account received
func (uc *reviewUC) ListReviewsFor(ctx context.Context, accountID uuid.UUID) ([]*models.Review, error) {
	return uc.repo.ListReviewsFor(ctx, accountID)
}
