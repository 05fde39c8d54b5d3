package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RideStatus represents the lifecycle state of a published ride
type RideStatus string

const (
	RideStatusOpen      RideStatus = "open"
	RideStatusFull      RideStatus = "full"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCanceled  RideStatus = "canceled"
)

// Ride is a driver-published pooled trip offer with finite seat capacity
type Ride struct {
	ID             uuid.UUID           `json:"id" db:"id"`
	DriverID       uuid.UUID           `json:"driver_id" db:"driver_id"`
	StartLocation  string              `json:"start_location" db:"start_location"`
	EndLocation    string              `json:"end_location" db:"end_location"`
	DepartureTime  time.Time           `json:"departure_time" db:"departure_time"`
	TotalSeats     int                 `json:"total_seats" db:"total_seats"`
	AvailableSeats int                 `json:"available_seats" db:"available_seats"`
	PricePerSeat   decimal.NullDecimal `json:"price_per_seat" db:"price_per_seat"`
	Status         RideStatus          `json:"status" db:"status"`
	CreatedAt      time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" db:"updated_at"`
}

// IsPristine reports whether no seat of the ride has been booked
func (r *Ride) IsPristine() bool {
	return r.AvailableSeats == r.TotalSeats
}

// PublishRideRequest is the payload a driver sends to publish a ride
type PublishRideRequest struct {
	StartLocation string           `json:"start_location" validate:"required,max=255"`
	EndLocation   string           `json:"end_location" validate:"required,max=255"`
	DepartureTime time.Time        `json:"departure_time" validate:"required"`
	TotalSeats    int              `json:"total_seats" validate:"required,min=1,max=8"`
	PricePerSeat  *decimal.Decimal `json:"price_per_seat,omitempty"`
}

// RideFilter narrows ride listings
type RideFilter struct {
	Statuses []RideStatus
	DriverID *uuid.UUID
}
