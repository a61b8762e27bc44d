package repository

import (
	"context"
	"errors"

	"github.com/stocklight/stocklight/internal/product/domain"
	"github.com/stocklight/stocklight/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(gdb *gorm.DB) domain.Repository {
	return &repo{db: gdb}
}

func (r *repo) Create(ctx context.Context, product *domain.Product) error {
	return db.FromContext(ctx, r.db).WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.FromContext(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var p domain.Product
	err := db.FromContext(ctx, r.db).WithContext(ctx).
		Where("sku = ?", sku).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context) ([]domain.Product, error) {
	var items []domain.Product
	err := db.FromContext(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.FromContext(ctx, r.db).WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":       product.Name,
			"sku":        product.SKU,
			"price":      product.Price,
			"stock":      product.Stock,
			"min_stock":  product.MinStock,
			"updated_at": product.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	return db.FromContext(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Product{}).Error
}
