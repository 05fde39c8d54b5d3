package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
)

// ReviewUC lets the parties of a finished trip review each other
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/carpool/services/reviews ReviewUC
type ReviewUC interface {
	SubmitReview(ctx context.Context, reviewerID uuid.UUID, req models.SubmitReviewRequest) (*models.Review, error)
	ListReviewsFor(ctx context.Context, accountID uuid.UUID) ([]*models.Review, error)
}
