package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/pkg/observability"
	"github.com/piresc/carpool/services/trips"
)

// orderIssuer implements trips.OrderIssuer
type orderIssuer struct {
	repo    trips.TripRepo
	gw      trips.TripGW
	metrics *observability.Metrics
}

// NewOrderIssuer creates the order issuer used by the matcher
func NewOrderIssuer(repo trips.TripRepo, gw trips.TripGW, metrics *observability.Metrics) trips.OrderIssuer {
	return &orderIssuer{
		repo:    repo,
		gw:      gw,
		metrics: metrics,
	}
}

// IssueOrder flips the request to matched and records its order. The status flip is the guard:
// a request that is no longer pending fails with alreadyMatched and nothing is written.
func (i *orderIssuer) IssueOrder(ctx context.Context, requestID, driverID uuid.UUID, startTime *time.Time, rideID *uuid.UUID) (*models.TripOrder, error) {
	defer nrpkg.StartSegment(ctx, "OrderIssuer.IssueOrder")()

	if err := i.repo.MarkMatched(ctx, requestID, rideID); err != nil {
		return nil, err
	}
	req, err := i.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	order := &models.TripOrder{
		ID:            uuid.New(),
		TripRequestID: requestID,
		DriverID:      driverID,
		RideID:        rideID,
		PaymentStatus: models.PaymentPending,
		StartTime:     startTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := i.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	event := models.OrderIssuedEvent{
		OrderID:       order.ID,
		TripRequestID: requestID,
		PassengerID:   req.PassengerID,
		DriverID:      driverID,
		RideID:        rideID,
		TripType:      req.TripType,
		StartTime:     startTime,
		IssuedAt:      now,
	}
	database.AfterCommit(ctx, func() {
		i.metrics.OrderIssued(string(req.TripType))
		if err := i.gw.PublishOrderIssued(ctx, event); err != nil {
			nrpkg.NoticeError(ctx, err)
			logger.WarnCtx(ctx, "Failed to publish order issued event",
				logger.UUID("order_id", order.ID),
				logger.Err(err))
		}
	})

	logger.InfoCtx(ctx, "Order issued",
		logger.UUID("order_id", order.ID),
		logger.UUID("trip_request_id", requestID),
		logger.UUID("driver_id", driverID),
		logger.String("trip_type", string(req.TripType)))
	return order, nil
}
