// goudace | 2026
// identity_test.go

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goudace/shop-backend/internal/core"
)

func admin() *Identity {
	return &Identity{
		UserID:      "admin-1",
		Email:       "admin@example.com",
		Permissions: []string{PermissionUser, PermissionAdmin},
	}
}

func regular() *Identity {
	return &Identity{
		UserID:      "user-1",
		Email:       "user@example.com",
		Permissions: []string{PermissionUser},
	}
}

func TestRequire(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Require(nil), core.ErrUnauthorized)
	assert.ErrorIs(t, Require(&Identity{}), core.ErrUnauthorized)
	assert.NoError(t, Require(regular()))
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	// Anonymous requesters get Unauthorized, not Forbidden.
	err := RequirePermission(nil, PermissionAdmin)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
	assert.NotErrorIs(t, err, core.ErrForbidden)

	err = RequirePermission(regular(), PermissionAdmin)
	assert.ErrorIs(t, err, core.ErrForbidden)

	assert.NoError(t, RequirePermission(admin(), PermissionAdmin))
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, RequireOwnerOrAdmin(nil, "user-1"), core.ErrUnauthorized)

	assert.NoError(t, RequireOwnerOrAdmin(regular(), "user-1"))
	assert.NoError(t, RequireOwnerOrAdmin(admin(), "user-1"))

	err := RequireOwnerOrAdmin(regular(), "someone-else")
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestIdentityHasNilSafe(t *testing.T) {
	t.Parallel()

	var identity *Identity
	assert.False(t, identity.Has(PermissionUser))
	assert.False(t, identity.IsAdmin())
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromContext(context.Background()))

	identity := regular()
	ctx := NewContext(context.Background(), identity)
	assert.Equal(t, identity, FromContext(ctx))
}
