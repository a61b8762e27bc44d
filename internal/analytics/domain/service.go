package domain

import (
	"context"

	productdomain "github.com/stocklight/stocklight/internal/product/domain"
)

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

// Summary aggregates the current inventory position. The low-stock and
// out-of-stock sets are disjoint: an empty position only counts as
// out of stock.
type Summary struct {
	TotalProducts       int                      `json:"totalProducts"`
	TotalInventoryValue float64                  `json:"totalInventoryValue"`
	LowStockCount       int                      `json:"lowStockCount"`
	OutOfStockCount     int                      `json:"outOfStockCount"`
	LowStockItems       []productdomain.Response `json:"lowStockItems"`
	OutOfStockItems     []productdomain.Response `json:"outOfStockItems"`
}
