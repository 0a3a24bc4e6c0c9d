// goudace | 2026
// service.go

package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/catalog"
)

// ItemGetter is the slice of the catalog the cart needs: enough to confirm
// an item exists before putting it in a cart.
type ItemGetter interface {
	GetItem(ctx context.Context, id string) (*catalog.Item, error)
}

type Service struct {
	repo  Repository
	items ItemGetter
}

func NewService(repo Repository, items ItemGetter) *Service {
	return &Service{repo: repo, items: items}
}

// AddToCart puts one unit of an item into the signed-in user's cart. Adding
// an item that is already there increments its quantity.
func (s *Service) AddToCart(
	ctx context.Context,
	identity *auth.Identity,
	itemID string,
) (*CartItem, error) {
	if err := auth.Require(identity); err != nil {
		return nil, err
	}

	if _, err := s.items.GetItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	row, err := s.repo.Upsert(ctx, uuid.New().String(), identity.UserID, itemID)
	if err != nil {
		return nil, err
	}

	return row, nil
}

// RemoveFromCart deletes a cart row. Only the cart's owner or an admin may
// remove it.
func (s *Service) RemoveFromCart(
	ctx context.Context,
	identity *auth.Identity,
	cartItemID string,
) error {
	if err := auth.Require(identity); err != nil {
		return err
	}

	row, err := s.repo.GetByID(ctx, cartItemID)
	if err != nil {
		return err
	}

	if err := auth.RequireOwnerOrAdmin(identity, row.UserID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, cartItemID)
}

// GetCart returns the signed-in user's cart rows joined with their items.
func (s *Service) GetCart(
	ctx context.Context,
	identity *auth.Identity,
) ([]Entry, error) {
	if err := auth.Require(identity); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, identity.UserID)
}
