package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderIssuedEvent is published once a trip request has been matched to a driver
type OrderIssuedEvent struct {
	OrderID       uuid.UUID  `json:"order_id"`
	TripRequestID uuid.UUID  `json:"trip_request_id"`
	PassengerID   uuid.UUID  `json:"passenger_id"`
	DriverID      uuid.UUID  `json:"driver_id"`
	RideID        *uuid.UUID `json:"ride_id,omitempty"`
	TripType      TripType   `json:"trip_type"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	IssuedAt      time.Time  `json:"issued_at"`
}

// RideEvent is published when a ride changes state in a way other parties care about
type RideEvent struct {
	RideID         uuid.UUID  `json:"ride_id"`
	DriverID       uuid.UUID  `json:"driver_id"`
	Status         RideStatus `json:"status"`
	AvailableSeats int        `json:"available_seats"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// TripEvent is published on trip request lifecycle transitions
type TripEvent struct {
	TripRequestID uuid.UUID         `json:"trip_request_id"`
	PassengerID   uuid.UUID         `json:"passenger_id"`
	DriverID      *uuid.UUID        `json:"driver_id,omitempty"`
	OrderID       *uuid.UUID        `json:"order_id,omitempty"`
	Status        TripRequestStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
