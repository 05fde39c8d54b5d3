package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapability_Passenger(t *testing.T) {
	id := uuid.New()
	c := NewCapability(id, RolePassenger)

	assert.Equal(t, id, c.AccountID())
	assert.True(t, c.Can(PermJoinRide))
	assert.True(t, c.Can(PermSubmitTripRequest))
	assert.False(t, c.Can(PermAcceptTripRequest))
	assert.False(t, c.Can(PermPublishRide))
	assert.True(t, c.HasRole(RolePassenger))
	assert.False(t, c.HasRole(RoleDriver))
}

func TestNewCapability_UnionOfRoles(t *testing.T) {
	c := NewCapability(uuid.New(), RoleDriver, RolePassenger)

	assert.True(t, c.Can(PermJoinRide))
	assert.True(t, c.Can(PermAcceptTripRequest))
	assert.Equal(t, []Role{RoleDriver, RolePassenger}, c.Roles())
}

func TestNewCapability_UnknownRoleGrantsNothing(t *testing.T) {
	c := NewCapability(uuid.New(), Role("superuser"))

	assert.Empty(t, c.Roles())
	assert.False(t, c.Can(PermManageCoupons))
}

func TestCapabilityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	c := NewCapability(uuid.New(), RoleAdmin)
	got, ok := FromContext(WithCapability(context.Background(), c))
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.True(t, got.Can(PermManageCoupons))
}

func TestPermissionsFor(t *testing.T) {
	assert.Contains(t, PermissionsFor(RoleDriver), PermCancelRide)
	assert.NotContains(t, PermissionsFor(RoleAdvertiser), PermJoinRide)
	assert.Nil(t, PermissionsFor(Role("nobody")))
}
