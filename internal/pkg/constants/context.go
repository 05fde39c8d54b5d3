package constants

// Echo context keys
const (
	ContextKeyCapability = "capability"
	ContextKeyRequestID  = "request_id"
)
