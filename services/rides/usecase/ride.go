package usecase

import (
	"context"
	"fmt"
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
	"github.com/piresc/carpool/services/rides"
)

// rideUC implements rides.RideUC
type rideUC struct {
	cfg        *models.Config
	repo       rides.RideRepo
	gw         rides.RideGW
	transactor database.Transactor
	locker     database.Locker
	retrier    *retry.Retrier
	metrics    *observability.Metrics
}

// NewRideUC creates the ride ledger use case
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	gw rides.RideGW,
	transactor database.Transactor,
	locker database.Locker,
	retrier *retry.Retrier,
	metrics *observability.Metrics,
) rides.RideUC {
	return &rideUC{
		cfg:        cfg,
		repo:       repo,
		gw:         gw,
		transactor: transactor,
		locker:     locker,
		retrier:    retrier,
		metrics:    metrics,
	}
}

// PublishRide creates an open ride with every seat available
func (uc *rideUC) PublishRide(ctx context.Context, driverID uuid.UUID, req models.PublishRideRequest) (*models.Ride, error) {
	now := models.Now()
	if !req.DepartureTime.After(now) {
		return nil, apperror.Validation("departure_time must be in the future")
	}
	if req.TotalSeats < 1 || req.TotalSeats > 8 {
		return nil, apperror.Validation("total_seats must be between 1 and 8")
	}

	ride := &models.Ride{
		ID:             uuid.New(),
		DriverID:       driverID,
		StartLocation:  req.StartLocation,
		EndLocation:    req.EndLocation,
		DepartureTime:  req.DepartureTime.UTC().Truncate(time.Second),
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		Status:         models.RideStatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.PricePerSeat != nil {
		if req.PricePerSeat.IsNegative() {
			return nil, apperror.Validation("price_per_seat cannot be negative")
		}
		ride.PricePerSeat.Decimal = *req.PricePerSeat
		ride.PricePerSeat.Valid = true
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ride published",
		logger.UUID("ride_id", ride.ID),
		logger.UUID("driver_id", driverID),
		logger.Int("total_seats", ride.TotalSeats))
	return ride, nil
}

// LockRide must run inside a transaction for the lock to outlive the read
func (uc *rideUC) LockRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRideForUpdate(ctx, rideID)
	if err != nil {
		if apperror.IsConflict(err) {
			uc.metrics.LockConflict("ride")
		}
		return nil, err
	}
	return ride, nil
}

// FindMatchingRide picks the ride a carpool request can be matched against
func (uc *rideUC) FindMatchingRide(ctx context.Context, driverID uuid.UUID, start, end string, departure time.Time) (*models.Ride, error) {
	return uc.repo.FindMatchingRide(ctx, driverID, start, end, departure.UTC().Truncate(time.Second))
}

// ReserveSeats takes count seats from the ride, flipping it to full when none are left.
// Nothing is written when the ride is not open or has fewer than count seats.
func (uc *rideUC) ReserveSeats(ctx context.Context, rideID uuid.UUID, count int) (*models.Ride, error) {
	if count <= 0 {
		return nil, apperror.Validation("seat count must be positive")
	}

	var reserved *models.Ride
	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		ride, err := uc.LockRide(ctx, rideID)
		if err != nil {
			return err
		}
		if ride.Status != models.RideStatusOpen {
			return apperror.ErrRideNotOpen
		}
		if count > ride.AvailableSeats {
			return apperror.ErrInsufficientSeats.WithMessage("ride has %d seats left, %d requested", ride.AvailableSeats, count)
		}

		ride.AvailableSeats -= count
		if ride.AvailableSeats == 0 {
			ride.Status = models.RideStatusFull
		}
		if err := uc.repo.UpdateSeats(ctx, ride.ID, ride.AvailableSeats, ride.Status); err != nil {
			return err
		}

		if ride.Status == models.RideStatusFull {
			event := rideEvent(ride)
			database.AfterCommit(ctx, func() { uc.publish(ctx, constants.SubjectRideFull, event) })
		}
		reserved = ride
		return nil
	})
	if err != nil {
		uc.metrics.SeatReservation(string(apperror.KindOf(err)))
		return nil, err
	}

	uc.metrics.SeatReservation("success")
	return reserved, nil
}

// ReleaseSeats gives count seats back, never beyond the ride's capacity. A full ride reopens.
// Finished rides are left untouched.
func (uc *rideUC) ReleaseSeats(ctx context.Context, rideID uuid.UUID, count int) (*models.Ride, error) {
	if count <= 0 {
		return nil, apperror.Validation("seat count must be positive")
	}

	var released *models.Ride
	err := uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
		ride, err := uc.LockRide(ctx, rideID)
		if err != nil {
			return err
		}
		released = ride
		if ride.Status == models.RideStatusCompleted || ride.Status == models.RideStatusCanceled {
			return nil
		}

		ride.AvailableSeats += count
		if ride.AvailableSeats > ride.TotalSeats {
			ride.AvailableSeats = ride.TotalSeats
		}
		ride.Status = models.RideStatusOpen
		return uc.repo.UpdateSeats(ctx, ride.ID, ride.AvailableSeats, ride.Status)
	})
	if err != nil {
		return nil, err
	}
	return released, nil
}

// CancelRide cancels a ride nobody has booked yet
func (uc *rideUC) CancelRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.finish(ctx, rideID, driverID, func(ride *models.Ride) error {
		if ride.Status != models.RideStatusOpen && ride.Status != models.RideStatusFull {
			return apperror.ErrRideNotCancellable.WithMessage("ride is %s", ride.Status)
		}
		if !ride.IsPristine() {
			return apperror.ErrRideNotCancellable
		}
		ride.Status = models.RideStatusCanceled
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ride cancelled", logger.UUID("ride_id", ride.ID), logger.UUID("driver_id", driverID))
	uc.publish(ctx, constants.SubjectRideCancelled, rideEvent(ride))
	return ride, nil
}

// CompleteRide marks an open or full ride as done
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.finish(ctx, rideID, driverID, func(ride *models.Ride) error {
		if ride.Status != models.RideStatusOpen && ride.Status != models.RideStatusFull {
			return apperror.ErrRideNotCompletable.WithMessage("ride is %s", ride.Status)
		}
		ride.Status = models.RideStatusCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ride completed", logger.UUID("ride_id", ride.ID), logger.UUID("driver_id", driverID))
	uc.publish(ctx, constants.SubjectRideCompleted, rideEvent(ride))
	return ride, nil
}

// finish applies a terminal status change to a ride owned by driverID under the ride lock
func (uc *rideUC) finish(ctx context.Context, rideID, driverID uuid.UUID, transition func(*models.Ride) error) (*models.Ride, error) {
	var result *models.Ride
	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		release, err := uc.locker.Acquire(ctx, fmt.Sprintf(constants.KeyRideLock, rideID))
		if err != nil {
			uc.metrics.LockConflict("ride")
			return err
		}
		defer release()

		return uc.transactor.WithinTx(ctx, func(ctx context.Context) error {
			ride, err := uc.LockRide(ctx, rideID)
			if err != nil {
				return err
			}
			if ride.DriverID != driverID {
				return apperror.ErrRideNotFound
			}
			if err := transition(ride); err != nil {
				return err
			}
			if err := uc.repo.UpdateStatus(ctx, ride.ID, ride.Status); err != nil {
				return err
			}
			result = ride
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListRides lists rides in one status, open by default
func (uc *rideUC) ListRides(ctx context.Context, status models.RideStatus) ([]*models.Ride, error) {
	if status == "" {
		status = models.RideStatusOpen
	}
	switch status {
	case models.RideStatusOpen, models.RideStatusFull, models.RideStatusCompleted, models.RideStatusCanceled:
	default:
		return nil, apperror.Validation("unknown ride status %q", status)
	}
	return uc.repo.ListRides(ctx, models.RideFilter{Statuses: []models.RideStatus{status}})
}

// ListDriverRides lists every ride the driver published
func (uc *rideUC) ListDriverRides(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error) {
	return uc.repo.ListRides(ctx, models.RideFilter{DriverID: &driverID})
}

// publish sends a ride event; delivery failures are logged and never fail the operation
func (uc *rideUC) publish(ctx context.Context, subject string, event models.RideEvent) {
	var err error
	switch subject {
	case constants.SubjectRideFull:
		err = uc.gw.PublishRideFull(ctx, event)
	case constants.SubjectRideCancelled:
		err = uc.gw.PublishRideCancelled(ctx, event)
	case constants.SubjectRideCompleted:
		err = uc.gw.PublishRideCompleted(ctx, event)
	}
	if err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.WarnCtx(ctx, "Failed to publish ride event",
			logger.String("subject", subject),
			logger.UUID("ride_id", event.RideID),
			logger.Err(err))
	}
}

func rideEvent(ride *models.Ride) models.RideEvent {
	return models.RideEvent{
		RideID:         ride.ID,
		DriverID:       ride.DriverID,
		Status:         ride.Status,
		AvailableSeats: ride.AvailableSeats,
		OccurredAt:     models.Now(),
	}
}
