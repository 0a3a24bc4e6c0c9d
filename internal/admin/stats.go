// goudace | 2026
// stats.go

package admin

import (
	"context"
	"fmt"

	"github.com/goudace/shop-backend/internal/core"
)

// StoreStats are the shop-level numbers the admin dashboard shows.
type StoreStats struct {
	Users        int64 `db:"users" json:"users"`
	Items        int64 `db:"items" json:"items"`
	Orders       int64 `db:"orders" json:"orders"`
	TotalRevenue int64 `db:"total_revenue" json:"total_revenue"`
}

type StatsRepository interface {
	StoreStats(ctx context.Context) (*StoreStats, error)
}

type statsRepository struct {
	db core.DBTX
}

func NewStatsRepository(db core.DBTX) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) StoreStats(ctx context.Context) (*StoreStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM items) AS items,
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COALESCE(SUM(total), 0) FROM orders) AS total_revenue`

	var stats StoreStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("store stats: %w", err)
	}

	return &stats, nil
}
