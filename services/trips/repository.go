package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// TripRepo persists trip requests and the orders issued for them.
// Methods join the transaction carried by ctx when there is one.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/carpool/services/trips TripRepo
type TripRepo interface {
	CreateRequest(ctx context.Context, req *models.TripRequest) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.TripRequest, error)
	GetRequestForUpdate(ctx context.Context, requestID uuid.UUID) (*models.TripRequest, error)
	ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]*models.TripRequest, error)
	ListRequests(ctx context.Context, filter models.TripRequestFilter, cells []string) ([]*models.TripRequest, error)

	// MarkMatched moves a pending request to matched, failing with alreadyMatched when it is no longer pending
	MarkMatched(ctx context.Context, requestID uuid.UUID, rideID *uuid.UUID) error
	// UpdateRequestStatus moves a request from one status to another, failing with invalidTransition when it is not in from
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, from, to models.TripRequestStatus) error

	CreateOrder(ctx context.Context, order *models.TripOrder) error
	GetOrderByRequest(ctx context.Context, requestID uuid.UUID) (*models.TripOrder, error)
	GetOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*models.OrderWithRequest, error)
	FindActiveOrderForRide(ctx context.Context, passengerID, rideID uuid.UUID) (*models.TripOrder, error)
	UpdateOrderPayment(ctx context.Context, orderID uuid.UUID, status models.PaymentStatus) error
	StartOrder(ctx context.Context, orderID uuid.UUID, startTime time.Time) error
	CompleteOrder(ctx context.Context, order *models.TripOrder) error
	RateOrder(ctx context.Context, orderID uuid.UUID, byPassenger bool, rating decimal.Decimal, comment string) error
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.OrderWithRequest, error)
}
