package repository

import (
	"context"

	"github.com/stocklight/stocklight/internal/stockhistory/domain"
	"github.com/stocklight/stocklight/internal/storage/memory"
)

// memoryRepo appends ledger rows to a slice in insertion order.
// Rows share a creation timestamp at second granularity under load,
// so List walks the slice backwards instead of sorting by time.
type memoryRepo struct {
	locker *memory.Locker

	entries []domain.StockHistory
}

func ProvideMemory(locker *memory.Locker) domain.Repository {
	return &memoryRepo{locker: locker}
}

func (r *memoryRepo) Insert(ctx context.Context, entry *domain.StockHistory) error {
	release := r.locker.Lock(ctx)
	defer release()

	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryRepo) List(ctx context.Context, filter domain.ListFilter) ([]domain.StockHistory, error) {
	release := r.locker.RLock(ctx)
	defer release()

	items := make([]domain.StockHistory, 0, filter.Limit)
	for i := len(r.entries) - 1; i >= 0 && len(items) < filter.Limit; i-- {
		entry := r.entries[i]
		if filter.ProductID != 0 && entry.ProductID != filter.ProductID {
			continue
		}
		items = append(items, entry)
	}
	return items, nil
}
