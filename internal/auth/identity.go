// goudace | 2026
// identity.go

package auth

import (
	"context"
	"fmt"

	"github.com/goudace/shop-backend/internal/core"
)

const (
	PermissionUser  = "USER"
	PermissionAdmin = "ADMIN"
)

// KnownPermissions is the closed set of labels an admin may assign.
var KnownPermissions = []string{PermissionUser, PermissionAdmin}

// Identity is the authenticated requester, resolved once per request from the
// session cookie. A nil *Identity means anonymous.
type Identity struct {
	UserID      string
	Email       string
	Permissions []string
}

func (i *Identity) Has(label string) bool {
	if i == nil {
		return false
	}
	for _, existing := range i.Permissions {
		if existing == label {
			return true
		}
	}
	return false
}

func (i *Identity) IsAdmin() bool {
	return i.Has(PermissionAdmin)
}

type contextKey struct{}

func NewContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

func FromContext(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(contextKey{}).(*Identity); ok {
		return identity
	}
	return nil
}

// Require fails when no identity is attached to the request.
func Require(identity *Identity) error {
	if identity == nil || identity.UserID == "" {
		return fmt.Errorf("authorize: %w", core.ErrUnauthorized)
	}
	return nil
}

// RequirePermission fails with Unauthorized for anonymous requesters and with
// Forbidden when the identity lacks the capability.
func RequirePermission(identity *Identity, label string) error {
	if err := Require(identity); err != nil {
		return err
	}
	if !identity.Has(label) {
		return fmt.Errorf("authorize: need %s: %w", label, core.ErrForbidden)
	}
	return nil
}

// RequireOwnerOrAdmin grants access when the identity owns the target
// resource or holds ADMIN. Every resource-scoped operation (cart item
// removal, single order read, order listing) goes through this predicate.
func RequireOwnerOrAdmin(identity *Identity, ownerID string) error {
	if err := Require(identity); err != nil {
		return err
	}
	if identity.UserID == ownerID || identity.IsAdmin() {
		return nil
	}
	return fmt.Errorf("authorize: not the owner: %w", core.ErrForbidden)
}
