package constants

// NATS Subjects
const (
	// Order issuer
	SubjectOrderIssued = "order.issued"

	// Ride ledger
	SubjectRideFull      = "ride.full"
	SubjectRideCancelled = "ride.cancelled"
	SubjectRideCompleted = "ride.completed"

	// Trip request lifecycle
	SubjectTripRequestCancelled = "trip.request.cancelled"
	SubjectTripStarted          = "trip.started"
	SubjectTripCompleted        = "trip.completed"
)
