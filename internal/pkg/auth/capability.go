// Package auth resolves account roles into the set of operations a request may perform.
package auth

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Role is a grant held by an account
type Role string

const (
	RolePassenger  Role = "passenger"
	RoleDriver     Role = "driver"
	RoleAdvertiser Role = "advertiser"
	RoleAdmin      Role = "admin"
)

// Permission names one guarded operation
type Permission string

const (
	PermSubmitTripRequest   Permission = "trip_request:submit"
	PermViewOwnTripRequests Permission = "trip_request:view_own"
	PermCancelTripRequest   Permission = "trip_request:cancel"
	PermViewOpenRides       Permission = "ride:view_open"
	PermJoinRide            Permission = "ride:join"
	PermPublishRide         Permission = "ride:publish"
	PermCancelRide          Permission = "ride:cancel"
	PermCompleteRide        Permission = "ride:complete"
	PermViewDriverQueue     Permission = "trip_request:view_queue"
	PermAcceptTripRequest   Permission = "trip_request:accept"
	PermProgressTrip        Permission = "trip:progress"
	PermViewOrders          Permission = "order:view"
	PermRateOrder           Permission = "order:rate"
	PermListCoupons         Permission = "coupon:list"
	PermClaimCoupon         Permission = "coupon:claim"
	PermManageCoupons       Permission = "coupon:manage"
	PermSubmitReview        Permission = "review:submit"
)

var rolePermissions = map[Role][]Permission{
	RolePassenger: {
		PermSubmitTripRequest,
		PermViewOwnTripRequests,
		PermCancelTripRequest,
		PermViewOpenRides,
		PermJoinRide,
		PermViewOrders,
		PermRateOrder,
		PermListCoupons,
		PermClaimCoupon,
		PermSubmitReview,
	},
	RoleDriver: {
		PermViewOpenRides,
		PermPublishRide,
		PermCancelRide,
		PermCompleteRide,
		PermViewDriverQueue,
		PermAcceptTripRequest,
		PermProgressTrip,
		PermViewOrders,
		PermRateOrder,
		PermSubmitReview,
	},
	RoleAdvertiser: {
		PermViewOpenRides,
	},
	RoleAdmin: {
		PermViewOpenRides,
		PermManageCoupons,
		PermListCoupons,
	},
}

// PermissionsFor returns the operations a role grants
func PermissionsFor(role Role) []Permission {
	return rolePermissions[role]
}

// Capability is the immutable grant set of the account behind a request
type Capability struct {
	accountID   uuid.UUID
	roles       map[Role]struct{}
	permissions map[Permission]struct{}
}

// NewCapability resolves roles into a capability; unknown roles grant nothing
func NewCapability(accountID uuid.UUID, roles ...Role) *Capability {
	c := &Capability{
		accountID:   accountID,
		roles:       make(map[Role]struct{}, len(roles)),
		permissions: make(map[Permission]struct{}),
	}
	for _, role := range roles {
		perms, known := rolePermissions[role]
		if !known {
			continue
		}
		c.roles[role] = struct{}{}
		for _, p := range perms {
			c.permissions[p] = struct{}{}
		}
	}
	return c
}

// AccountID returns the authenticated account
func (c *Capability) AccountID() uuid.UUID {
	return c.accountID
}

// Can reports whether the capability grants p
func (c *Capability) Can(p Permission) bool {
	_, ok := c.permissions[p]
	return ok
}

// HasRole reports whether the account holds role
func (c *Capability) HasRole(role Role) bool {
	_, ok := c.roles[role]
	return ok
}

// Roles returns the resolved roles in a stable order
func (c *Capability) Roles() []Role {
	roles := make([]Role, 0, len(c.roles))
	for r := range c.roles {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

type capabilityKey struct{}

// WithCapability stores the capability on ctx
func WithCapability(ctx context.Context, c *Capability) context.Context {
	return context.WithValue(ctx, capabilityKey{}, c)
}

// FromContext returns the capability stored on ctx, if any
func FromContext(ctx context.Context) (*Capability, bool) {
	c, ok := ctx.Value(capabilityKey{}).(*Capability)
	return c, ok
}
