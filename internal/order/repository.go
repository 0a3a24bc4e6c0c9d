// goudace | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goudace/shop-backend/internal/core"
)

type Repository interface {
	// CreateWithItems writes an order and its frozen line items in a single
	// transaction.
	CreateWithItems(ctx context.Context, o *Order, items []OrderItem) error
	GetByID(ctx context.Context, id string) (*Order, []OrderItem, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithItems(
	ctx context.Context,
	o *Order,
	items []OrderItem,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		orderQuery := `
			INSERT INTO orders (id, user_id, total, charge_id)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`

		err := tx.GetContext(ctx, &o.CreatedAt, orderQuery,
			o.ID, o.UserID, o.Total, o.ChargeID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (
				id, order_id, title, description, price, image,
				large_image, quantity
			) VALUES (
				:id, :order_id, :title, :description, :price, :image,
				:large_image, :quantity
			)`

		if _, err := tx.NamedExecContext(ctx, itemQuery, items); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}

		return nil
	})
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Order, []OrderItem, error) {
	orderQuery := `
		SELECT id, user_id, total, charge_id, created_at
		FROM orders
		WHERE id = $1`

	var o Order
	err := r.db.GetContext(ctx, &o, orderQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, title, description, price, image,
		       large_image, quantity, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`

	var items []OrderItem
	if err := r.db.SelectContext(ctx, &items, itemsQuery, id); err != nil {
		return nil, nil, fmt.Errorf("get order items: %w", err)
	}

	return &o, items, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Order, error) {
	query := `
		SELECT id, user_id, total, charge_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var orders []Order
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	query := `
		SELECT id, user_id, total, charge_id, created_at
		FROM orders
		ORDER BY created_at DESC`

	var orders []Order
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}
