// goudace | 2026
// service.go

package order

import (
	"context"

	"github.com/goudace/shop-backend/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrder returns an order with its line items. Only the order's owner or
// an admin may see it.
func (s *Service) GetOrder(
	ctx context.Context,
	identity *auth.Identity,
	id string,
) (*Order, []OrderItem, error) {
	if err := auth.Require(identity); err != nil {
		return nil, nil, err
	}

	o, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := auth.RequireOwnerOrAdmin(identity, o.UserID); err != nil {
		return nil, nil, err
	}

	return o, items, nil
}

// ListMine returns the signed-in user's orders, newest first.
func (s *Service) ListMine(
	ctx context.Context,
	identity *auth.Identity,
) ([]Order, error) {
	if err := auth.Require(identity); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, identity.UserID)
}

// ListAll returns every order in the system. Admin only.
func (s *Service) ListAll(
	ctx context.Context,
	identity *auth.Identity,
) ([]Order, error) {
	if err := auth.RequirePermission(identity, auth.PermissionAdmin); err != nil {
		return nil, err
	}

	return s.repo.ListAll(ctx)
}
