package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/constants"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/models"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/pkg/observability"
	"github.com/piresc/carpool/internal/pkg/retry"
	"github.com/piresc/carpool/internal/utils"
	"github.com/piresc/carpool/services/coupons"
	"github.com/piresc/carpool/services/rides"
	"github.com/piresc/carpool/services/trips"
	"github.com/shopspring/decimal"
)

var (
	minRating = decimal.NewFromInt(1)
	maxRating = decimal.NewFromInt(5)
)

// tripUC implements trips.TripUC
type tripUC struct {
	cfg        *models.Config
	repo       trips.TripRepo
	gw         trips.TripGW
	issuer     trips.OrderIssuer
	rideUC     rides.RideUC
	couponUC   coupons.CouponUC
	transactor database.Transactor
	locker     database.Locker
	retrier    *retry.Retrier
	metrics    *observability.Metrics
}

// NewTripUC creates the trip request matcher
func NewTripUC(
	cfg *models.Config,
	repo trips.TripRepo,
	gw trips.TripGW,
	issuer trips.OrderIssuer,
	rideUC rides.RideUC,
	couponUC coupons.CouponUC,
	transactor database.Transactor,
	locker database.Locker,
	retrier *retry.Retrier,
	metrics *observability.Metrics,
) trips.TripUC {
	return &tripUC{
		cfg:        cfg,
		repo:       repo,
		gw:         gw,
		issuer:     issuer,
		rideUC:     rideUC,
		couponUC:   couponUC,
		transactor: transactor,
		locker:     locker,
		retrier:    retrier,
		metrics:    metrics,
	}
}

// SubmitRequest records a passenger's pending trip request
func (uc *tripUC) SubmitRequest(ctx context.Context, passengerID uuid.UUID, in models.SubmitTripRequest) (*models.TripRequest, error) {
	now := models.Now()

	if in.TripType != models.TripTypeTaxi && in.TripType != models.TripTypeCarpool {
		return nil, apperror.Validation("unknown trip_type %q", in.TripType)
	}
	if strings.TrimSpace(in.PickupAddress) == "" || strings.TrimSpace(in.DropoffAddress) == "" {
		return nil, apperror.Validation("pickup_address and dropoff_address are required")
	}
	if in.SeatsNeeded != nil && *in.SeatsNeeded <= 0 {
		return nil, apperror.Validation("seats_needed must be positive")
	}
	if in.ScheduledTime != nil && !in.ScheduledTime.After(now) {
		return nil, apperror.Validation("scheduled_time must be in the future")
	}
	if in.TripType == models.TripTypeCarpool {
		if in.ScheduledTime == nil {
			return nil, apperror.Validation("carpool requests need a scheduled_time")
		}
		if in.SeatsNeeded == nil {
			return nil, apperror.ErrMissingSeatCount
		}
	}

	req := &models.TripRequest{
		ID:              uuid.New(),
		PassengerID:     passengerID,
		TripType:        in.TripType,
		Status:          models.TripRequestPending,
		PickupLocation:  in.PickupLocation,
		PickupAddress:   strings.TrimSpace(in.PickupAddress),
		PickupGeohash:   utils.EncodePoint(in.PickupLocation, uc.cfg.Matching.GeohashPrecision),
		DropoffLocation: in.DropoffLocation,
		DropoffAddress:  strings.TrimSpace(in.DropoffAddress),
		RequestTime:     now,
		SeatsNeeded:     in.SeatsNeeded,
		PetsNeeded:      in.PetsNeeded,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.ScheduledTime != nil {
		scheduled := in.ScheduledTime.UTC().Truncate(time.Second)
		req.ScheduledTime = &scheduled
	}
	if in.EstimatedPrice != nil {
		if in.EstimatedPrice.IsNegative() {
			return nil, apperror.Validation("estimated_price cannot be negative")
		}
		req.EstimatedPrice = decimal.NewNullDecimal(*in.EstimatedPrice)
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip request submitted",
		logger.UUID("trip_request_id", req.ID),
		logger.UUID("passenger_id", passengerID),
		logger.String("trip_type", string(req.TripType)))
	return req, nil
}

// ListPassengerRequests lists the passenger's own requests
func (uc *tripUC) ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]*models.TripRequest, error) {
	return uc.repo.ListPassengerRequests(ctx, passengerID)
}

// ListPendingRequests is the driver work queue. A geohash narrows it to that cell and its neighbours.
func (uc *tripUC) ListPendingRequests(ctx context.Context, filter models.TripRequestFilter) ([]*models.TripRequest, error) {
	if filter.Status == "" {
		filter.Status = models.TripRequestPending
	}
	if filter.Status != models.TripRequestPending {
		return nil, apperror.Validation("the driver queue only lists pending requests")
	}
	if filter.TripType != "" && filter.TripType != models.TripTypeTaxi && filter.TripType != models.TripTypeCarpool {
		return nil, apperror.Validation("unknown trip_type %q", filter.TripType)
	}

	var cells []string
	if filter.Geohash != "" {
		if !utils.ValidGeohash(filter.Geohash) {
			return nil, apperror.Validation("invalid geohash %q", filter.Geohash)
		}
		cells = utils.CellWithNeighbors(filter.Geohash)
	}
	return uc.repo.ListRequests(ctx, filter, cells)
}

// AcceptRequest matches a pending request to driverID and issues its order.
// Taxi requests are bound directly; carpool requests must fit an open ride of the driver.
func (uc *tripUC) AcceptRequest(ctx context.Context, requestID, driverID uuid.UUID) (*models.TripOrder, error) {
	var order *models.TripOrder
	err := uc.withLock(ctx, fmt.Sprintf(constants.KeyTripRequestLock, requestID), "trip_request", func(ctx context.Context) error {
		order = nil

		req, err := uc.repo.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != models.TripRequestPending {
			return apperror.ErrRequestNotFound
		}
		if req.PassengerID == driverID {
			return apperror.ErrSelfJoin
		}

		switch req.TripType {
		case models.TripTypeTaxi:
			order, err = uc.acceptTaxi(ctx, req, driverID)
		case models.TripTypeCarpool:
			order, err = uc.acceptCarpool(ctx, req, driverID)
		default:
			err = apperror.ErrInvalidTransition.WithMessage("unsupported trip type %q", req.TripType)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip request accepted",
		logger.UUID("trip_request_id", requestID),
		logger.UUID("driver_id", driverID),
		logger.UUID("order_id", order.ID))
	return order, nil
}

func (uc *tripUC) acceptTaxi(ctx context.Context, req *models.TripRequest, driverID uuid.UUID) (*models.TripOrder, error) {
	start := models.Now()
	if req.ScheduledTime != nil {
		start = *req.ScheduledTime
	}
	return uc.issuer.IssueOrder(ctx, req.ID, driverID, &start, nil)
}

// acceptCarpool checks, in order: a matching ride exists, the seat count is known, the ride has room
func (uc *tripUC) acceptCarpool(ctx context.Context, req *models.TripRequest, driverID uuid.UUID) (*models.TripOrder, error) {
	if req.ScheduledTime == nil {
		return nil, apperror.ErrNoMatchingRide
	}
	ride, err := uc.rideUC.FindMatchingRide(ctx, driverID, req.PickupAddress, req.DropoffAddress, *req.ScheduledTime)
	if err != nil {
		return nil, err
	}
	if req.SeatsNeeded == nil || *req.SeatsNeeded <= 0 {
		return nil, apperror.ErrMissingSeatCount
	}
	if *req.SeatsNeeded > ride.AvailableSeats {
		return nil, apperror.ErrInsufficientSeats.WithMessage("ride has %d seats left, %d requested", ride.AvailableSeats, *req.SeatsNeeded)
	}

	if _, err := uc.rideUC.ReserveSeats(ctx, ride.ID, *req.SeatsNeeded); err != nil {
		return nil, err
	}
	departure := ride.DepartureTime
	rideID := ride.ID
	return uc.issuer.IssueOrder(ctx, req.ID, driverID, &departure, &rideID)
}

// JoinRide books one seat on a ride for the passenger. Joining a ride the passenger already
// holds a live order on returns that order and changes nothing.
func (uc *tripUC) JoinRide(ctx context.Context, rideID, passengerID uuid.UUID) (*models.TripOrder, error) {
	var (
		order  *models.TripOrder
		joined bool
	)
	err := uc.withLock(ctx, fmt.Sprintf(constants.KeyRideLock, rideID), "ride", func(ctx context.Context) error {
		order, joined = nil, false

		ride, err := uc.rideUC.LockRide(ctx, rideID)
		if err != nil {
			return err
		}

		existing, err := uc.repo.FindActiveOrderForRide(ctx, passengerID, rideID)
		if err == nil {
			order = existing
			return nil
		}
		if !errors.Is(err, apperror.ErrOrderNotFound) {
			return err
		}

		if ride.DriverID == passengerID {
			return apperror.ErrSelfJoin
		}
		if ride.Status == models.RideStatusFull || (ride.Status == models.RideStatusOpen && ride.AvailableSeats <= 0) {
			return apperror.ErrRideFull
		}
		if ride.Status != models.RideStatusOpen {
			return apperror.ErrRideNotOpen
		}

		if _, err := uc.rideUC.ReserveSeats(ctx, rideID, 1); err != nil {
			return err
		}

		req := seatRequest(ride, passengerID)
		if err := uc.repo.CreateRequest(ctx, req); err != nil {
			return err
		}
		departure := ride.DepartureTime
		order, err = uc.issuer.IssueOrder(ctx, req.ID, ride.DriverID, &departure, &ride.ID)
		if err != nil {
			return err
		}
		joined = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if joined {
		logger.InfoCtx(ctx, "Passenger joined ride",
			logger.UUID("ride_id", rideID),
			logger.UUID("passenger_id", passengerID),
			logger.UUID("order_id", order.ID))
	}
	return order, nil
}

// seatRequest is the carpool request recorded for a one-seat join
func seatRequest(ride *models.Ride, passengerID uuid.UUID) *models.TripRequest {
	now := models.Now()
	seats := 1
	departure := ride.DepartureTime
	return &models.TripRequest{
		ID:             uuid.New(),
		PassengerID:    passengerID,
		TripType:       models.TripTypeCarpool,
		Status:         models.TripRequestPending,
		PickupAddress:  ride.StartLocation,
		DropoffAddress: ride.EndLocation,
		RequestTime:    now,
		ScheduledTime:  &departure,
		SeatsNeeded:    &seats,
		EstimatedPrice: ride.PricePerSeat,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CancelRequest cancels the passenger's pending or matched request. A matched carpool
// request gives its seats back to the ride and its order's payment is cancelled.
func (uc *tripUC) CancelRequest(ctx context.Context, requestID, passengerID uuid.UUID) (*models.TripRequest, error) {
	var cancelled *models.TripRequest
	err := uc.withLock(ctx, fmt.Sprintf(constants.KeyTripRequestLock, requestID), "trip_request", func(ctx context.Context) error {
		cancelled = nil

		req, err := uc.repo.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.PassengerID != passengerID || !req.Status.CanTransition(models.TripRequestCancelled) {
			return apperror.ErrRequestNotFound
		}

		from := req.Status
		if err := uc.repo.UpdateRequestStatus(ctx, req.ID, from, models.TripRequestCancelled); err != nil {
			return err
		}

		var orderID *uuid.UUID
		if from == models.TripRequestMatched {
			order, err := uc.repo.GetOrderByRequest(ctx, req.ID)
			switch {
			case err == nil:
				if err := uc.repo.UpdateOrderPayment(ctx, order.ID, models.PaymentCancelled); err != nil {
					return err
				}
				orderID = &order.ID
			case !errors.Is(err, apperror.ErrOrderNotFound):
				return err
			}

			if req.TripType == models.TripTypeCarpool && req.RideID != nil && req.SeatsNeeded != nil && *req.SeatsNeeded > 0 {
				if _, err := uc.rideUC.ReleaseSeats(ctx, *req.RideID, *req.SeatsNeeded); err != nil {
					return err
				}
			}
		}

		req.Status = models.TripRequestCancelled
		req.UpdatedAt = models.Now()
		event := tripEvent(req, nil, orderID)
		database.AfterCommit(ctx, func() {
			uc.metrics.RequestCancelled()
			uc.publish(ctx, constants.SubjectTripRequestCancelled, event)
		})
		cancelled = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip request cancelled",
		logger.UUID("trip_request_id", requestID),
		logger.UUID("passenger_id", passengerID))
	return cancelled, nil
}

// StartTrip moves a matched request to in_progress on behalf of its driver
func (uc *tripUC) StartTrip(ctx context.Context, requestID, driverID uuid.UUID) (*models.TripOrder, error) {
	var order *models.TripOrder
	err := uc.withLock(ctx, fmt.Sprintf(constants.KeyTripRequestLock, requestID), "trip_request", func(ctx context.Context) error {
		req, o, err := uc.driverTrip(ctx, requestID, driverID, models.TripRequestInProgress)
		if err != nil {
			return err
		}

		now := models.Now()
		if err := uc.repo.UpdateRequestStatus(ctx, req.ID, req.Status, models.TripRequestInProgress); err != nil {
			return err
		}
		if err := uc.repo.StartOrder(ctx, o.ID, now); err != nil {
			return err
		}
		if o.StartTime == nil {
			o.StartTime = &now
		}

		req.Status = models.TripRequestInProgress
		event := tripEvent(req, &driverID, &o.ID)
		database.AfterCommit(ctx, func() { uc.publish(ctx, constants.SubjectTripStarted, event) })
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip started", logger.UUID("trip_request_id", requestID), logger.UUID("driver_id", driverID))
	return order, nil
}

// CompleteTrip closes an in-progress trip with the driver's report, redeeming the passenger's coupon if one is given
func (uc *tripUC) CompleteTrip(ctx context.Context, requestID, driverID uuid.UUID, in models.CompleteTripRequest) (*models.TripOrder, error) {
	if in.ActualPrice.IsNegative() {
		return nil, apperror.Validation("actual_price cannot be negative")
	}

	var order *models.TripOrder
	err := uc.withLock(ctx, fmt.Sprintf(constants.KeyTripRequestLock, requestID), "trip_request", func(ctx context.Context) error {
		req, o, err := uc.driverTrip(ctx, requestID, driverID, models.TripRequestCompleted)
		if err != nil {
			return err
		}

		now := models.Now()
		o.EndTime = &now
		o.Route = in.Route
		o.ActualPrice = decimal.NewNullDecimal(in.ActualPrice)
		o.UpdatedAt = now
		if in.UserCouponID != nil {
			discount, err := uc.couponUC.Resolve(ctx, req.PassengerID, *in.UserCouponID, in.ActualPrice, now)
			if err != nil {
				return err
			}
			o.UserCouponID = in.UserCouponID
			o.DiscountAmount = decimal.NewNullDecimal(discount)
		}

		if err := uc.repo.UpdateRequestStatus(ctx, req.ID, req.Status, models.TripRequestCompleted); err != nil {
			return err
		}
		if err := uc.repo.CompleteOrder(ctx, o); err != nil {
			return err
		}

		req.Status = models.TripRequestCompleted
		event := tripEvent(req, &driverID, &o.ID)
		database.AfterCommit(ctx, func() { uc.publish(ctx, constants.SubjectTripCompleted, event) })
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip completed", logger.UUID("trip_request_id", requestID), logger.UUID("driver_id", driverID))
	return order, nil
}

// driverTrip loads a locked request with its order, checking that driverID drives it and that it may move to next
func (uc *tripUC) driverTrip(ctx context.Context, requestID, driverID uuid.UUID, next models.TripRequestStatus) (*models.TripRequest, *models.TripOrder, error) {
	req, err := uc.repo.GetRequestForUpdate(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	order, err := uc.repo.GetOrderByRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperror.ErrOrderNotFound) {
			return nil, nil, apperror.ErrRequestNotFound
		}
		return nil, nil, err
	}
	if order.DriverID != driverID {
		return nil, nil, apperror.ErrRequestNotFound
	}
	if !req.Status.CanTransition(next) {
		return nil, nil, apperror.ErrInvalidTransition.WithMessage("trip request is %s, cannot move to %s", req.Status, next)
	}
	return req, order, nil
}

// RateOrder records the caller's rating of the other party on a completed trip.
// Passengers rate drivers into passenger_rating, drivers rate passengers into driver_rating.
func (uc *tripUC) RateOrder(ctx context.Context, orderID, accountID uuid.UUID, in models.RateOrderRequest) (*models.TripOrder, error) {
	if in.Rating.LessThan(minRating) || in.Rating.GreaterThan(maxRating) || !in.Rating.Equal(in.Rating.Round(1)) {
		return nil, apperror.Validation("rating must be between 1 and 5 with at most one decimal place")
	}

	var rated *models.TripOrder
	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		o, err := uc.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		byPassenger := o.PassengerID == accountID
		if !byPassenger && o.DriverID != accountID {
			return apperror.ErrOrderNotFound
		}
		if o.TripStatus != models.TripRequestCompleted {
			return apperror.ErrInvalidTransition.WithMessage("only completed trips can be rated")
		}

		if err := uc.repo.RateOrder(ctx, orderID, byPassenger, in.Rating, in.Comment); err != nil {
			return err
		}

		comment := in.Comment
		if byPassenger {
			o.PassengerRating = decimal.NewNullDecimal(in.Rating)
			o.PassengerComment = &comment
		} else {
			o.DriverRating = decimal.NewNullDecimal(in.Rating)
			o.DriverComment = &comment
		}
		rated = &o.TripOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rated, nil
}

// ListOrders lists the order history visible under filter
func (uc *tripUC) ListOrders(ctx context.Context, filter models.OrderFilter) ([]*models.OrderWithRequest, error) {
	return uc.repo.ListOrders(ctx, filter)
}

// withLock runs fn in a transaction while holding the named Redis lock, retrying conflicts
func (uc *tripUC) withLock(ctx context.Context, key, resource string, fn func(ctx context.Context) error) error {
	return uc.retrier.Execute(ctx, func(ctx context.Context) error {
		release, err := uc.locker.Acquire(ctx, key)
		if err != nil {
			if apperror.IsConflict(err) {
				uc.metrics.LockConflict(resource)
			}
			return err
		}
		defer release()

		return uc.transactor.WithinTx(ctx, fn)
	})
}

// publish sends a trip event; delivery failures are logged and never fail the operation
func (uc *tripUC) publish(ctx context.Context, subject string, event models.TripEvent) {
	var err error
	switch subject {
	case constants.SubjectTripRequestCancelled:
		err = uc.gw.PublishRequestCancelled(ctx, event)
	case constants.SubjectTripStarted:
		err = uc.gw.PublishTripStarted(ctx, event)
	case constants.SubjectTripCompleted:
		err = uc.gw.PublishTripCompleted(ctx, event)
	}
	if err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.WarnCtx(ctx, "Failed to publish trip event",
			logger.String("subject", subject),
			logger.UUID("trip_request_id", event.TripRequestID),
			logger.Err(err))
	}
}

func tripEvent(req *models.TripRequest, driverID, orderID *uuid.UUID) models.TripEvent {
	return models.TripEvent{
		TripRequestID: req.ID,
		PassengerID:   req.PassengerID,
		DriverID:      driverID,
		OrderID:       orderID,
		Status:        req.Status,
		OccurredAt:    models.Now(),
	}
}
