package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TripType distinguishes immediate dispatch from pooled trips
type TripType string

const (
	TripTypeTaxi    TripType = "taxi"
	TripTypeCarpool TripType = "carpool"
)

// TripRequestStatus represents the lifecycle of a passenger's trip request
type TripRequestStatus string

const (
	TripRequestPending    TripRequestStatus = "pending"
	TripRequestMatched    TripRequestStatus = "matched"
	TripRequestInProgress TripRequestStatus = "in_progress"
	TripRequestCompleted  TripRequestStatus = "completed"
	TripRequestCancelled  TripRequestStatus = "cancelled"
)

// tripTransitions lists the allowed forward moves of a trip request.
var tripTransitions = map[TripRequestStatus][]TripRequestStatus{
	TripRequestPending:    {TripRequestMatched, TripRequestCancelled},
	TripRequestMatched:    {TripRequestInProgress, TripRequestCancelled},
	TripRequestInProgress: {TripRequestCompleted},
}

// CanTransition reports whether a request may move from one status to another
func (s TripRequestStatus) CanTransition(to TripRequestStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// GeoPoint is a latitude/longitude pair stored as JSON
type GeoPoint struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
}

// Value implements driver.Valuer
func (p GeoPoint) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *GeoPoint) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = GeoPoint{}
		return nil
	default:
		return fmt.Errorf("unsupported geo point source %T", src)
	}
}

// TripRequest is a passenger's ask for transportation
type TripRequest struct {
	ID              uuid.UUID           `json:"id" db:"id"`
	PassengerID     uuid.UUID           `json:"passenger_id" db:"passenger_id"`
	TripType        TripType            `json:"trip_type" db:"trip_type"`
	Status          TripRequestStatus   `json:"status" db:"status"`
	PickupLocation  GeoPoint            `json:"pickup_location" db:"pickup_location"`
	PickupAddress   string              `json:"pickup_address" db:"pickup_address"`
	PickupGeohash   string              `json:"pickup_geohash" db:"pickup_geohash"`
	DropoffLocation GeoPoint            `json:"dropoff_location" db:"dropoff_location"`
	DropoffAddress  string              `json:"dropoff_address" db:"dropoff_address"`
	RequestTime     time.Time           `json:"request_time" db:"request_time"`
	ScheduledTime   *time.Time          `json:"scheduled_time,omitempty" db:"scheduled_time"`
	SeatsNeeded     *int                `json:"seats_needed,omitempty" db:"seats_needed"`
	EstimatedPrice  decimal.NullDecimal `json:"estimated_price" db:"estimated_price"`
	PetsNeeded      bool                `json:"pets_needed" db:"pets_needed"`
	RideID          *uuid.UUID          `json:"ride_id,omitempty" db:"ride_id"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" db:"updated_at"`
}

// SubmitTripRequest is the payload a passenger sends to ask for a trip
type SubmitTripRequest struct {
	TripType        TripType         `json:"trip_type" validate:"required,oneof=taxi carpool"`
	PickupLocation  GeoPoint         `json:"pickup_location"`
	PickupAddress   string           `json:"pickup_address" validate:"required,max=255"`
	DropoffLocation GeoPoint         `json:"dropoff_location"`
	DropoffAddress  string           `json:"dropoff_address" validate:"required,max=255"`
	ScheduledTime   *time.Time       `json:"scheduled_time,omitempty"`
	SeatsNeeded     *int             `json:"seats_needed,omitempty" validate:"omitempty,min=1,max=8"`
	EstimatedPrice  *decimal.Decimal `json:"estimated_price,omitempty"`
	PetsNeeded      bool             `json:"pets_needed"`
}

// TripRequestFilter narrows the driver work queue
type TripRequestFilter struct {
	Status   TripRequestStatus
	TripType TripType
	Geohash  string
}

// CompleteTripRequest carries what a driver reports when dropping a passenger off
type CompleteTripRequest struct {
	ActualPrice  decimal.Decimal `json:"actual_price"`
	Route        Route           `json:"route" validate:"omitempty,dive"`
	UserCouponID *uuid.UUID      `json:"user_coupon_id,omitempty"`
}
