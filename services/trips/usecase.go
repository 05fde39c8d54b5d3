package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
)

// TripUC matches passengers' trip requests with drivers and tracks them to completion
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/carpool/services/trips TripUC
type TripUC interface {
	SubmitRequest(ctx context.Context, passengerID uuid.UUID, req models.SubmitTripRequest) (*models.TripRequest, error)
	ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]*models.TripRequest, error)
	ListPendingRequests(ctx context.Context, filter models.TripRequestFilter) ([]*models.TripRequest, error)

	AcceptRequest(ctx context.Context, requestID, driverID uuid.UUID) (*models.TripOrder, error)
	JoinRide(ctx context.Context, rideID, passengerID uuid.UUID) (*models.TripOrder, error)
	CancelRequest(ctx context.Context, requestID, passengerID uuid.UUID) (*models.TripRequest, error)

	StartTrip(ctx context.Context, requestID, driverID uuid.UUID) (*models.TripOrder, error)
	CompleteTrip(ctx context.Context, requestID, driverID uuid.UUID, req models.CompleteTripRequest) (*models.TripOrder, error)
	RateOrder(ctx context.Context, orderID, accountID uuid.UUID, req models.RateOrderRequest) (*models.TripOrder, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.OrderWithRequest, error)
}

// OrderIssuer creates the single order of a matched request. It must run inside the
// matcher's transaction, after every matching check has passed and seats are reserved.
// go:generate mockgen -destination=mocks/mock_issuer.go -package=mocks github.com/piresc/carpool/services/trips OrderIssuer
type OrderIssuer interface {
	IssueOrder(ctx context.Context, requestID, driverID uuid.UUID, startTime *time.Time, rideID *uuid.UUID) (*models.TripOrder, error)
}
