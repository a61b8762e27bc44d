package service

import (
	"context"

	"github.com/stocklight/stocklight/internal/analytics/domain"
	"github.com/stocklight/stocklight/internal/observability/metrics"
	productdomain "github.com/stocklight/stocklight/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    productdomain.Repository
	Metrics *metrics.Metrics
}

type Service struct {
	log     *zap.Logger
	repo    productdomain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("analytics.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Summary(ctx context.Context) (*domain.Summary, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		TotalProducts:   len(items),
		LowStockItems:   make([]productdomain.Response, 0),
		OutOfStockItems: make([]productdomain.Response, 0),
	}

	for i := range items {
		item := &items[i]
		summary.TotalInventoryValue += item.Price * float64(item.Stock)

		switch item.Status() {
		case productdomain.StatusLowStock:
			summary.LowStockItems = append(summary.LowStockItems, productdomain.NewResponse(item))
		case productdomain.StatusOutOfStock:
			summary.OutOfStockItems = append(summary.OutOfStockItems, productdomain.NewResponse(item))
		}
	}
	summary.LowStockCount = len(summary.LowStockItems)
	summary.OutOfStockCount = len(summary.OutOfStockItems)

	s.metrics.RecordAnalyticsRead(ctx)
	return summary, nil
}
