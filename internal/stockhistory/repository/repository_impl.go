package repository

import (
	"context"

	"github.com/stocklight/stocklight/internal/stockhistory/domain"
	"github.com/stocklight/stocklight/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(gdb *gorm.DB) domain.Repository {
	return &repo{db: gdb}
}

func (r *repo) Insert(ctx context.Context, entry *domain.StockHistory) error {
	return db.FromContext(ctx, r.db).WithContext(ctx).Create(entry).Error
}

func (r *repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.StockHistory, error) {
	stmt := db.FromContext(ctx, r.db).WithContext(ctx).
		Model(&domain.StockHistory{})

	if filter.ProductID != 0 {
		stmt = stmt.Where("product_id = ?", filter.ProductID)
	}

	var items []domain.StockHistory
	err := stmt.
		Order("created_at DESC").
		Limit(filter.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
