package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
)

// ReviewRepo persists reviews and reads the order they are about
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/carpool/services/reviews ReviewRepo
type ReviewRepo interface {
	// GetOrder returns the order with its passenger and trip status
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.OrderWithRequest, error)
	CreateReview(ctx context.Context, review *models.Review) error
	ListReviewsFor(ctx context.Context, revieweeID uuid.UUID) ([]*models.Review, error)
}
