// goudace | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goudace/shop-backend/internal/core"
)

type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id string) (*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context) ([]Item, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListSubcategories(ctx context.Context) ([]Subcategory, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const itemColumns = `id, title, description, price, image, large_image,
	       category_id, subcategory_id, created_at, updated_at`

func (r *repository) CreateItem(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO items (
			id, title, description, price, image, large_image,
			category_id, subcategory_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, item, query,
		item.ID,
		item.Title,
		item.Description,
		item.Price,
		item.Image,
		item.LargeImage,
		item.CategoryID,
		item.SubcategoryID,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	return nil
}

func (r *repository) GetItem(ctx context.Context, id string) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = $1`, itemColumns)

	var item Item
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get item: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	return &item, nil
}

func (r *repository) UpdateItem(ctx context.Context, item *Item) error {
	query := `
		UPDATE items
		SET title = $2, description = $3, price = $4, image = $5,
		    large_image = $6, category_id = $7, subcategory_id = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &item.UpdatedAt, query,
		item.ID,
		item.Title,
		item.Description,
		item.Price,
		item.Image,
		item.LargeImage,
		item.CategoryID,
		item.SubcategoryID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update item: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	return nil
}

func (r *repository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete item: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListItems(ctx context.Context) ([]Item, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM items ORDER BY created_at DESC`,
		itemColumns,
	)

	var items []Item
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	query := `SELECT id, name FROM categories ORDER BY name`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *repository) ListSubcategories(
	ctx context.Context,
) ([]Subcategory, error) {
	var subcategories []Subcategory
	query := `SELECT id, name, category_id FROM subcategories ORDER BY name`
	if err := r.db.SelectContext(ctx, &subcategories, query); err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	return subcategories, nil
}
