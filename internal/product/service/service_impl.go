package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stocklight/stocklight/internal/observability/metrics"
	"github.com/stocklight/stocklight/internal/product/domain"
	historydomain "github.com/stocklight/stocklight/internal/stockhistory/domain"
	"github.com/stocklight/stocklight/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	History historydomain.Service
	Tx      db.TxRunner
	Metrics *metrics.Metrics
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	history historydomain.Service
	tx      db.TxRunner
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("product.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		history: p.History,
		tx:      p.Tx,
		metrics: p.Metrics,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, domain.NewResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	sku := normalizeSKU(req.SKU)
	if name == "" || sku == "" || req.Price == nil || req.Stock == nil || req.MinStock == nil {
		return nil, domain.NewValidationError("", "All fields are required")
	}
	if *req.Price < 0 || *req.Stock < 0 || *req.MinStock < 0 {
		return nil, domain.NewValidationError("", "Values cannot be negative")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		SKU:       sku,
		Price:     *req.Price,
		Stock:     *req.Stock,
		MinStock:  *req.MinStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrSKUConflict
		}
		if err := s.repo.Create(ctx, p); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrSKUConflict
			}
			return err
		}
		return s.history.LogChange(ctx, historydomain.ChangeInput{
			ProductID:   p.ID,
			ProductName: p.Name,
			OldStock:    0,
			NewStock:    p.Stock,
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordProductWrite(ctx, "create")
	s.log.Info("product created",
		zap.String("product_id", snowflake.ID(p.ID).String()),
		zap.String("sku", p.SKU),
	)

	resp := domain.NewResponse(p)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var item *domain.Product
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		item, err = s.repo.FindByID(ctx, productID.Int64())
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrProductNotFound
		}
		oldStock := item.Stock

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return domain.NewValidationError("name", "All fields are required")
			}
			if err := validateName(name); err != nil {
				return err
			}
			item.Name = name
		}
		if req.SKU != nil {
			sku := normalizeSKU(*req.SKU)
			if sku == "" {
				return domain.NewValidationError("sku", "All fields are required")
			}
			if err := validateSKU(sku); err != nil {
				return err
			}
			if sku != item.SKU {
				existing, err := s.repo.FindBySKU(ctx, sku)
				if err != nil {
					return err
				}
				if existing != nil && existing.ID != item.ID {
					return domain.ErrSKUConflict
				}
			}
			item.SKU = sku
		}
		if req.Price != nil {
			if *req.Price < 0 {
				return domain.NewValidationError("price", "Values cannot be negative")
			}
			item.Price = *req.Price
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				return domain.NewValidationError("stock", "Values cannot be negative")
			}
			item.Stock = *req.Stock
		}
		if req.MinStock != nil {
			if *req.MinStock < 0 {
				return domain.NewValidationError("minStock", "Values cannot be negative")
			}
			item.MinStock = *req.MinStock
		}

		item.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, item); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrSKUConflict
			}
			return err
		}

		if req.Stock != nil && *req.Stock != oldStock {
			return s.history.LogChange(ctx, historydomain.ChangeInput{
				ProductID:   item.ID,
				ProductName: item.Name,
				OldStock:    oldStock,
				NewStock:    item.Stock,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordProductWrite(ctx, "update")
	s.log.Info("product updated",
		zap.String("product_id", snowflake.ID(item.ID).String()),
		zap.String("sku", item.SKU),
	)

	resp := domain.NewResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		item, err := s.repo.FindByID(ctx, productID.Int64())
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrProductNotFound
		}
		return s.repo.Delete(ctx, item.ID)
	})
	if err != nil {
		return err
	}

	s.metrics.RecordProductWrite(ctx, "delete")
	s.log.Info("product deleted",
		zap.String("product_id", productID.String()),
	)
	return nil
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func validateName(name string) error {
	if len(name) > domain.MaxNameLength {
		return domain.NewValidationError("name",
			fmt.Sprintf("Name must be at most %d characters", domain.MaxNameLength))
	}
	return nil
}

func validateSKU(sku string) error {
	if len(sku) > domain.MaxSKULength {
		return domain.NewValidationError("sku",
			fmt.Sprintf("SKU must be at most %d characters", domain.MaxSKULength))
	}
	return nil
}
