package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks settlement of a trip order
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Route is the recorded trace of a trip
type Route []GeoPoint

// Value implements driver.Valuer
func (r Route) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner
func (r *Route) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("unsupported route source %T", src)
	}
}

// TripOrder is the record created once a trip request is matched
type TripOrder struct {
	ID               uuid.UUID           `json:"id" db:"id"`
	TripRequestID    uuid.UUID           `json:"trip_request_id" db:"trip_request_id"`
	DriverID         uuid.UUID           `json:"driver_id" db:"driver_id"`
	RideID           *uuid.UUID          `json:"ride_id,omitempty" db:"ride_id"`
	PaymentStatus    PaymentStatus       `json:"payment_status" db:"payment_status"`
	ActualPrice      decimal.NullDecimal `json:"actual_price" db:"actual_price"`
	UserCouponID     *uuid.UUID          `json:"user_coupon_id,omitempty" db:"user_coupon_id"`
	DiscountAmount   decimal.NullDecimal `json:"discount_amount" db:"discount_amount"`
	StartTime        *time.Time          `json:"start_time,omitempty" db:"start_time"`
	EndTime          *time.Time          `json:"end_time,omitempty" db:"end_time"`
	Route            Route               `json:"route,omitempty" db:"route"`
	PassengerRating  decimal.NullDecimal `json:"passenger_rating" db:"passenger_rating"`
	PassengerComment *string             `json:"passenger_comment,omitempty" db:"passenger_comment"`
	DriverRating     decimal.NullDecimal `json:"driver_rating" db:"driver_rating"`
	DriverComment    *string             `json:"driver_comment,omitempty" db:"driver_comment"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" db:"updated_at"`
}

// OrderWithRequest joins an order with the passenger who owns its request
type OrderWithRequest struct {
	TripOrder
	PassengerID uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	TripType    TripType          `json:"trip_type" db:"trip_type"`
	TripStatus  TripRequestStatus `json:"trip_status" db:"trip_status"`
}

// OrderFilter scopes order history to the roles of the caller
type OrderFilter struct {
	PassengerID *uuid.UUID
	DriverID    *uuid.UUID
}

// RateOrderRequest is a post-trip rating left on an order
type RateOrderRequest struct {
	Rating  decimal.Decimal `json:"rating"`
	Comment string          `json:"comment" validate:"max=1000"`
}
