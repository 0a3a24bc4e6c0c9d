// goudace | 2026
// entity.go

package catalog

import (
	"time"
)

// Item prices are integer minor-currency units; no floats anywhere near
// money.
type Item struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Price         int64     `db:"price"`
	Image         string    `db:"image"`
	LargeImage    string    `db:"large_image"`
	CategoryID    *string   `db:"category_id"`
	SubcategoryID *string   `db:"subcategory_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Subcategory struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	CategoryID string `db:"category_id"`
}
