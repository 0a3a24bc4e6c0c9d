// goudace | 2026
// service.go

package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/cart"
	"github.com/goudace/shop-backend/internal/core"
	"github.com/goudace/shop-backend/internal/order"
	"github.com/goudace/shop-backend/internal/payment"
)

// CartStore is the slice of the cart the checkout needs: read a user's rows
// and delete exactly the rows that were converted into an order.
type CartStore interface {
	ListByUser(ctx context.Context, userID string) ([]cart.Entry, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

// OrderStore persists an order with its frozen line items atomically.
type OrderStore interface {
	CreateWithItems(ctx context.Context, o *order.Order, items []order.OrderItem) error
}

type Service struct {
	carts   CartStore
	orders  OrderStore
	charger payment.Charger
	logger  *slog.Logger
}

func NewService(
	carts CartStore,
	orders OrderStore,
	charger payment.Charger,
	logger *slog.Logger,
) *Service {
	return &Service{
		carts:   carts,
		orders:  orders,
		charger: charger,
		logger:  logger,
	}
}

// CreateOrder converts the signed-in user's cart into a paid order.
//
// The server recomputes the total from the cart rows; nothing the client
// sends besides the payment token influences the amount charged. Before the
// charge, any failure aborts with no writes. After the charge has been
// captured, persistence failures are reported as core.ErrInconsistentState:
// money has moved and an operator has to reconcile, so the error is logged
// with the charge id and never silently retried.
func (s *Service) CreateOrder(
	ctx context.Context,
	identity *auth.Identity,
	sourceToken string,
) (*order.Order, []order.OrderItem, error) {
	if err := auth.Require(identity); err != nil {
		return nil, nil, err
	}

	entries, err := s.carts.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("load cart: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("cart is empty: %w", core.ErrInvalidInput)
	}

	// Captured before the charge so the later delete removes exactly the
	// rows that were paid for, not whatever is in the cart by then.
	cartIDs := make([]string, 0, len(entries))
	var total int64
	for _, e := range entries {
		cartIDs = append(cartIDs, e.ID)
		total += e.Item.Price * int64(e.Quantity)
	}

	charge, err := s.charger.Charge(ctx, total, sourceToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", core.ErrPaymentFailed, err)
	}

	// The charge has been captured. From here on the client walking away
	// must not abort persistence, so the request's cancellation no longer
	// applies.
	ctx = context.WithoutCancel(ctx)

	// The gateway's captured amount is the source of truth for what the
	// order cost, not the locally computed sum.
	o := &order.Order{
		ID:       uuid.New().String(),
		UserID:   identity.UserID,
		Total:    charge.Amount,
		ChargeID: charge.ID,
	}

	items := make([]order.OrderItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, order.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     o.ID,
			Title:       e.Item.Title,
			Description: e.Item.Description,
			Price:       e.Item.Price,
			Image:       e.Item.Image,
			LargeImage:  e.Item.LargeImage,
			Quantity:    e.Quantity,
		})
	}

	if err := s.orders.CreateWithItems(ctx, o, items); err != nil {
		s.logger.Error("order persistence failed after charge capture",
			"charge_id", charge.ID,
			"user_id", identity.UserID,
			"amount", total,
			"error", err,
		)
		return nil, nil, fmt.Errorf(
			"persist order for charge %s: %w: %w",
			charge.ID, core.ErrInconsistentState, err,
		)
	}

	if err := s.carts.DeleteByIDs(ctx, cartIDs); err != nil {
		s.logger.Error("cart cleanup failed after order creation",
			"charge_id", charge.ID,
			"order_id", o.ID,
			"error", err,
		)
		return nil, nil, fmt.Errorf(
			"clear cart for order %s: %w: %w",
			o.ID, core.ErrInconsistentState, err,
		)
	}

	return o, items, nil
}
