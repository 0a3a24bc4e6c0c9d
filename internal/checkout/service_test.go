// goudace | 2026
// service_test.go

package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/cart"
	"github.com/goudace/shop-backend/internal/catalog"
	"github.com/goudace/shop-backend/internal/core"
	"github.com/goudace/shop-backend/internal/order"
	"github.com/goudace/shop-backend/internal/payment"
)

type fakeCartStore struct {
	entries    []cart.Entry
	listErr    error
	deleteErr  error
	deletedIDs []string
}

func (f *fakeCartStore) ListByUser(
	_ context.Context,
	_ string,
) ([]cart.Entry, error) {
	return f.entries, f.listErr
}

func (f *fakeCartStore) DeleteByIDs(_ context.Context, ids []string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, ids...)
	return nil
}

type fakeOrderStore struct {
	err     error
	created *order.Order
	items   []order.OrderItem
}

func (f *fakeOrderStore) CreateWithItems(
	_ context.Context,
	o *order.Order,
	items []order.OrderItem,
) error {
	if f.err != nil {
		return f.err
	}
	f.created = o
	f.items = items
	return nil
}

type fakeCharger struct {
	err       error
	chargeID  string
	captured  int64
	gotAmount int64
	gotToken  string
	calls     int
}

func (f *fakeCharger) Charge(
	_ context.Context,
	amount int64,
	sourceToken string,
) (*payment.Charge, error) {
	f.calls++
	f.gotAmount = amount
	f.gotToken = sourceToken
	if f.err != nil {
		return nil, f.err
	}
	captured := f.captured
	if captured == 0 {
		captured = amount
	}
	return &payment.Charge{ID: f.chargeID, Amount: captured}, nil
}

func testEntries() []cart.Entry {
	return []cart.Entry{
		{
			CartItem: cart.CartItem{
				ID:       "cart-1",
				UserID:   "user-1",
				ItemID:   "item-1",
				Quantity: 2,
			},
			Item: catalog.Item{
				ID:          "item-1",
				Title:       "Mug",
				Description: "A mug",
				Price:       1000,
				Image:       "mug.jpg",
				LargeImage:  "mug-large.jpg",
			},
		},
		{
			CartItem: cart.CartItem{
				ID:       "cart-2",
				UserID:   "user-1",
				ItemID:   "item-2",
				Quantity: 1,
			},
			Item: catalog.Item{
				ID:          "item-2",
				Title:       "Sticker",
				Description: "A sticker",
				Price:       200,
				Image:       "sticker.jpg",
				LargeImage:  "sticker-large.jpg",
			},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedIn() *auth.Identity {
	return &auth.Identity{
		UserID:      "user-1",
		Email:       "user@example.com",
		Permissions: []string{auth.PermissionUser},
	}
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	carts := &fakeCartStore{entries: testEntries()}
	orders := &fakeOrderStore{}
	charger := &fakeCharger{chargeID: "ch_1"}
	svc := NewService(carts, orders, charger, discardLogger())

	o, items, err := svc.CreateOrder(context.Background(), signedIn(), "tok_visa")
	require.NoError(t, err)

	assert.Equal(t, int64(2200), charger.gotAmount)
	assert.Equal(t, "tok_visa", charger.gotToken)
	assert.Equal(t, int64(2200), o.Total)
	assert.Equal(t, "ch_1", o.ChargeID)
	assert.Equal(t, "user-1", o.UserID)

	require.Len(t, items, 2)
	assert.Equal(t, "Mug", items[0].Title)
	assert.Equal(t, "A mug", items[0].Description)
	assert.Equal(t, int64(1000), items[0].Price)
	assert.Equal(t, "mug.jpg", items[0].Image)
	assert.Equal(t, "mug-large.jpg", items[0].LargeImage)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, o.ID, items[0].OrderID)

	require.NotNil(t, orders.created)
	assert.Equal(t, o.ID, orders.created.ID)
	assert.Equal(t, []string{"cart-1", "cart-2"}, carts.deletedIDs)
}

func TestCreateOrderTotalComesFromCapturedCharge(t *testing.T) {
	t.Parallel()

	carts := &fakeCartStore{entries: testEntries()}
	orders := &fakeOrderStore{}
	charger := &fakeCharger{chargeID: "ch_1", captured: 2201}
	svc := NewService(carts, orders, charger, discardLogger())

	o, _, err := svc.CreateOrder(context.Background(), signedIn(), "tok_visa")
	require.NoError(t, err)

	// The cart sum is what gets requested, but the order records what the
	// gateway actually captured.
	assert.Equal(t, int64(2200), charger.gotAmount)
	assert.Equal(t, int64(2201), o.Total)
	assert.Equal(t, int64(2201), orders.created.Total)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	t.Parallel()

	svc := NewService(
		&fakeCartStore{},
		&fakeOrderStore{},
		&fakeCharger{},
		discardLogger(),
	)

	_, _, err := svc.CreateOrder(context.Background(), nil, "tok_visa")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	t.Parallel()

	charger := &fakeCharger{chargeID: "ch_1"}
	svc := NewService(
		&fakeCartStore{},
		&fakeOrderStore{},
		charger,
		discardLogger(),
	)

	_, _, err := svc.CreateOrder(context.Background(), signedIn(), "tok_visa")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Zero(t, charger.calls)
}

func TestCreateOrderChargeDeclined(t *testing.T) {
	t.Parallel()

	carts := &fakeCartStore{entries: testEntries()}
	orders := &fakeOrderStore{}
	charger := &fakeCharger{err: errors.New("card declined")}
	svc := NewService(carts, orders, charger, discardLogger())

	_, _, err := svc.CreateOrder(context.Background(), signedIn(), "tok_visa")
	assert.ErrorIs(t, err, core.ErrPaymentFailed)

	// Nothing written, nothing removed.
	assert.Nil(t, orders.created)
	assert.Empty(t, carts.deletedIDs)
}

func TestCreateOrderPersistFailureAfterCharge(t *testing.T) {
	t.Parallel()

	carts := &fakeCartStore{entries: testEntries()}
	orders := &fakeOrderStore{err: errors.New("connection lost")}
	charger := &fakeCharger{chargeID: "ch_1"}
	svc := NewService(carts, orders, charger, discardLogger())

	_, _, err := svc.CreateOrder(context.Background(), signedIn(), "tok_visa")
	assert.ErrorIs(t, err, core.ErrInconsistentState)
	assert.NotErrorIs(t, err, core.ErrPaymentFailed)
	assert.Contains(t, err.Error(), "ch_1")
	assert.Empty(t, carts.deletedIDs)
}

func TestCreateOrderCartCleanupFailure(t *testing.T) {
	t.Parallel()

	carts := &fakeCartStore{
		entries:   testEntries(),
		deleteErr: errors.New("connection lost"),
	}
	orders := &fakeOrderStore{}
	charger := &fakeCharger{chargeID: "ch_1"}
	svc := NewService(carts, orders, charger, discardLogger())

	_, _, err := svc.CreateOrder(context.Background(), signedIn(), "tok_visa")
	assert.ErrorIs(t, err, core.ErrInconsistentState)

	// The order itself was written before cleanup failed.
	assert.NotNil(t, orders.created)
}

// ctxAwareOrderStore fails the way a real store would when handed a dead
// context.
type ctxAwareOrderStore struct {
	fakeOrderStore
}

func (s *ctxAwareOrderStore) CreateWithItems(
	ctx context.Context,
	o *order.Order,
	items []order.OrderItem,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fakeOrderStore.CreateWithItems(ctx, o, items)
}

func TestCreateOrderSurvivesClientDisconnect(t *testing.T) {
	t.Parallel()

	carts := &fakeCartStore{entries: testEntries()}
	orders := &ctxAwareOrderStore{}
	charger := &fakeCharger{chargeID: "ch_1"}
	svc := NewService(carts, orders, charger, discardLogger())

	// Cancel the request context up front; the service detaches from it
	// once the charge is captured, so persistence still goes through.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o, _, err := svc.CreateOrder(ctx, signedIn(), "tok_visa")
	require.NoError(t, err)
	assert.NotNil(t, orders.created)
	assert.Equal(t, o.ID, orders.created.ID)
	assert.Equal(t, []string{"cart-1", "cart-2"}, carts.deletedIDs)
}
