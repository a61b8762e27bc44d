package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/observability/metrics"
	"github.com/stocklight/stocklight/internal/stockhistory/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Policy  *config.InventoryConfigHolder
	Metrics *metrics.Metrics
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	policy  *config.InventoryConfigHolder
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("stockhistory.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		policy:  p.Policy,
		metrics: p.Metrics,
	}
}

func (s *Service) LogChange(ctx context.Context, change domain.ChangeInput) error {
	changeType := domain.Classify(change.OldStock, change.NewStock)

	entry := &domain.StockHistory{
		ID:          s.genID.Generate().Int64(),
		ProductID:   change.ProductID,
		ProductName: change.ProductName,
		OldStock:    change.OldStock,
		NewStock:    change.NewStock,
		Change:      change.NewStock - change.OldStock,
		ChangeType:  string(changeType),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return err
	}

	s.metrics.RecordStockMovement(ctx, string(changeType))
	s.log.Info("stock movement recorded",
		zap.String("product_id", snowflake.ID(change.ProductID).String()),
		zap.Int64("old_stock", change.OldStock),
		zap.Int64("new_stock", change.NewStock),
		zap.String("change_type", string(changeType)),
	)
	return nil
}

func (s *Service) Query(ctx context.Context, req domain.QueryRequest) ([]domain.Response, error) {
	policy := s.policy.Get().History

	limit := req.Limit
	if limit <= 0 {
		limit = policy.DefaultLimit
	}
	if limit > policy.MaxLimit {
		limit = policy.MaxLimit
	}

	filter := domain.ListFilter{Limit: limit}
	if id := strings.TrimSpace(req.ProductID); id != "" {
		productID, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidProductID
		}
		filter.ProductID = productID.Int64()
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordHistoryQuery(ctx)

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, domain.NewResponse(&items[i]))
	}
	return resp, nil
}
