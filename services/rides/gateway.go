package rides

import (
	"context"

	"github.com/piresc/carpool/internal/pkg/models"
)

// RideGW publishes ride ledger events
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/carpool/services/rides RideGW
type RideGW interface {
	PublishRideFull(ctx context.Context, event models.RideEvent) error
	PublishRideCancelled(ctx context.Context, event models.RideEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideEvent) error
}
