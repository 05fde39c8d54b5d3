package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations.
// Methods run on the transaction carried by ctx when there is one.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/carpool/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	// GetRideForUpdate row-locks the ride without waiting; a held lock surfaces as conflict
	GetRideForUpdate(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	FindMatchingRide(ctx context.Context, driverID uuid.UUID, start, end string, departure time.Time) (*models.Ride, error)
	UpdateSeats(ctx context.Context, rideID uuid.UUID, availableSeats int, status models.RideStatus) error
	UpdateStatus(ctx context.Context, rideID uuid.UUID, status models.RideStatus) error
	ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error)
}
