// goudace | 2026
// service_test.go

package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
)

type fakeRepository struct {
	orders map[string]*Order
	items  map[string][]OrderItem
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		orders: map[string]*Order{},
		items:  map[string][]OrderItem{},
	}
}

func (f *fakeRepository) CreateWithItems(
	_ context.Context,
	o *Order,
	items []OrderItem,
) error {
	f.orders[o.ID] = o
	f.items[o.ID] = items
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Order, []OrderItem, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil, core.ErrNotFound
	}
	return o, f.items[id], nil
}

func (f *fakeRepository) ListByUser(
	_ context.Context,
	userID string,
) ([]Order, error) {
	var orders []Order
	for _, o := range f.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]Order, error) {
	orders := make([]Order, 0, len(f.orders))
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func seededService(t *testing.T) (*Service, *Order) {
	t.Helper()

	repo := newFakeRepository()
	o := &Order{ID: "order-1", UserID: "user-1", Total: 2200, ChargeID: "ch_1"}
	require.NoError(t, repo.CreateWithItems(context.Background(), o, []OrderItem{
		{ID: "line-1", OrderID: "order-1", Title: "Mug", Price: 1000, Quantity: 2},
	}))

	return NewService(repo), o
}

func identity(userID string, perms ...string) *auth.Identity {
	if len(perms) == 0 {
		perms = []string{auth.PermissionUser}
	}
	return &auth.Identity{UserID: userID, Permissions: perms}
}

func TestGetOrderOwner(t *testing.T) {
	t.Parallel()

	svc, o := seededService(t)

	got, items, err := svc.GetOrder(context.Background(), identity("user-1"), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	require.Len(t, items, 1)
	assert.Equal(t, "Mug", items[0].Title)
}

func TestGetOrderAdmin(t *testing.T) {
	t.Parallel()

	svc, o := seededService(t)

	got, _, err := svc.GetOrder(
		context.Background(),
		identity("admin-1", auth.PermissionAdmin),
		o.ID,
	)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
}

func TestGetOrderStranger(t *testing.T) {
	t.Parallel()

	svc, o := seededService(t)

	_, _, err := svc.GetOrder(context.Background(), identity("user-2"), o.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestGetOrderAnonymous(t *testing.T) {
	t.Parallel()

	svc, o := seededService(t)

	_, _, err := svc.GetOrder(context.Background(), nil, o.ID)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestListMine(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)

	orders, err := svc.ListMine(context.Background(), identity("user-1"))
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = svc.ListMine(context.Background(), identity("user-2"))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListAllRequiresAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := seededService(t)

	_, err := svc.ListAll(context.Background(), identity("user-1"))
	assert.ErrorIs(t, err, core.ErrForbidden)

	orders, err := svc.ListAll(
		context.Background(),
		identity("admin-1", auth.PermissionAdmin),
	)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
