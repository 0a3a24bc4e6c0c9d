// goudace | 2026
// repository.go

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goudace/shop-backend/internal/core"
)

type Repository interface {
	// Upsert adds one unit of an item to a user's cart, incrementing the
	// quantity when a row for (userID, itemID) already exists.
	Upsert(ctx context.Context, id, userID, itemID string) (*CartItem, error)
	GetByID(ctx context.Context, id string) (*CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(
	ctx context.Context,
	id, userID, itemID string,
) (*CartItem, error) {
	query := `
		INSERT INTO cart_items (id, user_id, item_id, quantity)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET quantity = cart_items.quantity + 1, updated_at = NOW()
		RETURNING id, user_id, item_id, quantity, created_at, updated_at`

	var row CartItem
	err := r.db.GetContext(ctx, &row, query, id, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}

	return &row, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*CartItem, error) {
	query := `
		SELECT id, user_id, item_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE id = $1`

	var row CartItem
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get cart item: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart item: %w", err)
	}

	return &row, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Entry, error) {
	query := `
		SELECT
			c.id, c.user_id, c.item_id, c.quantity, c.created_at, c.updated_at,
			i.id AS "item.id",
			i.title AS "item.title",
			i.description AS "item.description",
			i.price AS "item.price",
			i.image AS "item.image",
			i.large_image AS "item.large_image",
			i.category_id AS "item.category_id",
			i.subcategory_id AS "item.subcategory_id",
			i.created_at AS "item.created_at",
			i.updated_at AS "item.updated_at"
		FROM cart_items c
		JOIN items i ON i.id = c.item_id
		WHERE c.user_id = $1
		ORDER BY c.created_at`

	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	return entries, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM cart_items WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete cart item: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM cart_items WHERE id = ANY($1)`
	if _, err := r.db.ExecContext(ctx, query, ids); err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}

	return nil
}
