// goudace | 2026
// entity.go

package order

import "time"

type Order struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Total     int64     `db:"total"`
	ChargeID  string    `db:"charge_id"`
	CreatedAt time.Time `db:"created_at"`
}

// OrderItem is a frozen copy of a catalog item at purchase time. It carries
// no reference back to the catalog row, so later edits or deletions of the
// item never change what an order says was bought.
type OrderItem struct {
	ID          string    `db:"id"`
	OrderID     string    `db:"order_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Image       string    `db:"image"`
	LargeImage  string    `db:"large_image"`
	Quantity    int       `db:"quantity"`
	CreatedAt   time.Time `db:"created_at"`
}
