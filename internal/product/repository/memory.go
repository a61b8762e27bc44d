package repository

import (
	"context"
	"strings"

	"github.com/stocklight/stocklight/internal/product/domain"
	"github.com/stocklight/stocklight/internal/storage/memory"
)

// memoryRepo keeps products in process memory. Guarding goes through
// the shared locker so reads and writes stay consistent with the
// transactional flows that span multiple repositories.
type memoryRepo struct {
	locker *memory.Locker

	products map[int64]domain.Product
	order    []int64
}

func ProvideMemory(locker *memory.Locker) domain.Repository {
	return &memoryRepo{
		locker:   locker,
		products: make(map[int64]domain.Product),
	}
}

func (r *memoryRepo) Create(ctx context.Context, product *domain.Product) error {
	release := r.locker.Lock(ctx)
	defer release()

	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	release := r.locker.RLock(ctx)
	defer release()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	release := r.locker.RLock(ctx)
	defer release()

	for _, p := range r.products {
		if strings.EqualFold(p.SKU, sku) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	release := r.locker.RLock(ctx)
	defer release()

	items := make([]domain.Product, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.products[r.order[i]]; ok {
			items = append(items, p)
		}
	}
	return items, nil
}

func (r *memoryRepo) Update(ctx context.Context, product *domain.Product) error {
	release := r.locker.Lock(ctx)
	defer release()

	if _, ok := r.products[product.ID]; !ok {
		return nil
	}
	r.products[product.ID] = *product
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	release := r.locker.Lock(ctx)
	defer release()

	delete(r.products, id)
	return nil
}
