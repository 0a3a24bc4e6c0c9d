// goudace | 2026
// entity.go

package cart

import (
	"time"

	"github.com/goudace/shop-backend/internal/catalog"
)

// CartItem is one row in a user's cart: a quantity of a single catalog item.
// The pair (user_id, item_id) is unique, so adding the same item again bumps
// the quantity instead of creating a second row.
type CartItem struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ItemID    string    `db:"item_id"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Entry is a cart row joined with its catalog item, the shape checkout and
// the cart endpoints work with.
type Entry struct {
	CartItem
	Item catalog.Item `db:"item"`
}
