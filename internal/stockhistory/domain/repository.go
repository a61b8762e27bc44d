package domain

import "context"

// ListFilter narrows a ledger query. ProductID of zero means all
// products; Limit must be resolved by the caller before the query.
type ListFilter struct {
	ProductID int64
	Limit     int
}

type Repository interface {
	Insert(ctx context.Context, entry *StockHistory) error
	List(ctx context.Context, filter ListFilter) ([]StockHistory, error)
}
