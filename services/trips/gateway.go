package trips

import (
	"context"

	"github.com/piresc/carpool/internal/pkg/models"
)

// TripGW publishes matching and trip lifecycle events
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/carpool/services/trips TripGW
type TripGW interface {
	PublishOrderIssued(ctx context.Context, event models.OrderIssuedEvent) error
	PublishRequestCancelled(ctx context.Context, event models.TripEvent) error
	PublishTripStarted(ctx context.Context, event models.TripEvent) error
	PublishTripCompleted(ctx context.Context, event models.TripEvent) error
}
