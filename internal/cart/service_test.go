// goudace | 2026
// service_test.go

package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/catalog"
	"github.com/goudace/shop-backend/internal/core"
)

type fakeRepository struct {
	rows map[string]*CartItem
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[string]*CartItem{}}
}

func (f *fakeRepository) Upsert(
	_ context.Context,
	id, userID, itemID string,
) (*CartItem, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.ItemID == itemID {
			row.Quantity++
			return row, nil
		}
	}
	row := &CartItem{ID: id, UserID: userID, ItemID: itemID, Quantity: 1}
	f.rows[id] = row
	return row, nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*CartItem, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return row, nil
}

func (f *fakeRepository) ListByUser(
	_ context.Context,
	userID string,
) ([]Entry, error) {
	var entries []Entry
	for _, row := range f.rows {
		if row.UserID == userID {
			entries = append(entries, Entry{CartItem: *row})
		}
	}
	return entries, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.rows, id)
	}
	return nil
}

type fakeItemGetter struct {
	items map[string]*catalog.Item
}

func (f *fakeItemGetter) GetItem(
	_ context.Context,
	id string,
) (*catalog.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return item, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	items := &fakeItemGetter{items: map[string]*catalog.Item{
		"item-1": {ID: "item-1", Title: "Mug", Price: 1000},
	}}
	return NewService(repo, items), repo
}

func owner() *auth.Identity {
	return &auth.Identity{
		UserID:      "user-1",
		Permissions: []string{auth.PermissionUser},
	}
}

func stranger() *auth.Identity {
	return &auth.Identity{
		UserID:      "user-2",
		Permissions: []string{auth.PermissionUser},
	}
}

func adminUser() *auth.Identity {
	return &auth.Identity{
		UserID:      "admin-1",
		Permissions: []string{auth.PermissionAdmin},
	}
}

func TestAddToCartIncrementsQuantity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	first, err := svc.AddToCart(context.Background(), owner(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := svc.AddToCart(context.Background(), owner(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)
}

func TestAddToCartUnknownItem(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.AddToCart(context.Background(), owner(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAddToCartRequiresAuth(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.AddToCart(context.Background(), nil, "item-1")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService()
	row, err := svc.AddToCart(context.Background(), owner(), "item-1")
	require.NoError(t, err)

	// A different user cannot remove someone else's cart row.
	err = svc.RemoveFromCart(context.Background(), stranger(), row.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)
	assert.Contains(t, repo.rows, row.ID)

	// The owner can.
	err = svc.RemoveFromCart(context.Background(), owner(), row.ID)
	require.NoError(t, err)
	assert.NotContains(t, repo.rows, row.ID)
}

func TestRemoveFromCartAsAdmin(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService()
	row, err := svc.AddToCart(context.Background(), owner(), "item-1")
	require.NoError(t, err)

	err = svc.RemoveFromCart(context.Background(), adminUser(), row.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.rows)
}

func TestRemoveFromCartMissingRow(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	err := svc.RemoveFromCart(context.Background(), owner(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGetCartScopedToUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	_, err := svc.AddToCart(context.Background(), owner(), "item-1")
	require.NoError(t, err)

	entries, err := svc.GetCart(context.Background(), stranger())
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = svc.GetCart(context.Background(), owner())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
