package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
)

// RideUC is the ride ledger. Seat mutations join the caller's transaction when ctx carries one,
// so matching flows can reserve seats and issue orders atomically.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/carpool/services/rides RideUC
type RideUC interface {
	PublishRide(ctx context.Context, driverID uuid.UUID, req models.PublishRideRequest) (*models.Ride, error)

	// LockRide reads the ride under a row lock held until the surrounding transaction ends
	LockRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	FindMatchingRide(ctx context.Context, driverID uuid.UUID, start, end string, departure time.Time) (*models.Ride, error)
	ReserveSeats(ctx context.Context, rideID uuid.UUID, count int) (*models.Ride, error)
	ReleaseSeats(ctx context.Context, rideID uuid.UUID, count int) (*models.Ride, error)

	CancelRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, status models.RideStatus) ([]*models.Ride, error)
	ListDriverRides(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error)
}
