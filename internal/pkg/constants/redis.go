package constants

// Redis key formats
const (
	KeyRideLock        = "ride:lock:%s"         // Format: ride:lock:{ride_id}
	KeyTripRequestLock = "trip:request:lock:%s" // Format: trip:request:lock:{request_id}
	KeyRateLimit       = "rate:%s:%s"           // Format: rate:{route}:{account_id or ip}
)
