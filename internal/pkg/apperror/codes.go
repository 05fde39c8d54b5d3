package apperror

// Generic
var (
	ErrNotFound     = New(KindNotFound, "notFound", "resource not found")
	ErrConflict     = New(KindConflict, "conflict", "resource is being modified concurrently, try again")
	ErrValidation   = New(KindValidation, "validationError", "invalid input")
	ErrForbidden    = New(KindForbidden, "forbidden", "operation not permitted for this account")
	ErrUnauthorized = New(KindUnauthorized, "unauthorized", "authentication required")
)

// Ride ledger
var (
	ErrRideNotFound       = New(KindNotFound, "rideNotFound", "ride not found")
	ErrRideNotOpen        = New(KindInvalidState, "rideNotOpen", "ride is not open for booking")
	ErrRideFull           = New(KindCapacityExceeded, "rideFull", "ride has no seats left")
	ErrInsufficientSeats  = New(KindCapacityExceeded, "insufficientSeats", "not enough seats available on the ride")
	ErrRideNotCancellable = New(KindInvalidState, "rideNotCancellable", "ride already has booked seats")
	ErrRideNotCompletable = New(KindInvalidState, "rideNotCompletable", "ride can no longer be completed")
)

// Trip matching and order issuance
var (
	ErrRequestNotFound   = New(KindNotFound, "requestNotFound", "trip request not found or no longer pending")
	ErrNoMatchingRide    = New(KindNotFound, "noMatchingRide", "no open ride of this driver matches the request")
	ErrMissingSeatCount  = New(KindValidation, "missingSeatCount", "carpool request does not state how many seats it needs")
	ErrSelfJoin          = New(KindInvalidState, "selfJoin", "drivers cannot book their own ride")
	ErrAlreadyMatched    = New(KindInvalidState, "alreadyMatched", "trip request has already been matched")
	ErrInvalidTransition = New(KindInvalidState, "invalidTransition", "trip request cannot move to the requested status")
	ErrOrderNotFound     = New(KindNotFound, "orderNotFound", "order not found")
	ErrAlreadyRated      = New(KindInvalidState, "alreadyRated", "order has already been rated by this party")
)

// Coupons and reviews
var (
	ErrCouponNotFound       = New(KindNotFound, "couponNotFound", "coupon not found")
	ErrCouponNotUsable      = New(KindInvalidState, "couponNotUsable", "coupon cannot be applied")
	ErrCouponAlreadyClaimed = New(KindInvalidState, "couponAlreadyClaimed", "coupon already claimed by this account")
	ErrAlreadyReviewed      = New(KindInvalidState, "alreadyReviewed", "order already reviewed by this account")
)
