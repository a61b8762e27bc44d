package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/stockhistory/domain"
	"github.com/stocklight/stocklight/internal/stockhistory/repository"
	"github.com/stocklight/stocklight/internal/storage/memory"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, policy config.InventoryConfig) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	return New(Params{
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   repository.ProvideMemory(memory.NewLocker()),
		Policy: config.NewStaticInventoryConfigHolder(policy),
	})
}

func logMovements(t *testing.T, svc domain.Service, productID int64, count int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < count; i++ {
		err := svc.LogChange(ctx, domain.ChangeInput{
			ProductID:   productID,
			ProductName: fmt.Sprintf("Product %d", productID),
			OldStock:    int64(i),
			NewStock:    int64(i + 1),
		})
		if err != nil {
			t.Fatalf("log change: %v", err)
		}
	}
}

func TestQueryDefaultLimit(t *testing.T) {
	svc := newTestService(t, config.DefaultInventoryConfig())

	logMovements(t, svc, 1, 60)

	entries, err := svc.Query(context.Background(), domain.QueryRequest{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 50 {
		t.Fatalf("expected default limit of 50, got %d", len(entries))
	}
}

func TestQueryLimitClamped(t *testing.T) {
	svc := newTestService(t, config.InventoryConfig{
		History: config.HistoryPolicy{DefaultLimit: 5, MaxLimit: 10},
	})

	logMovements(t, svc, 1, 20)

	entries, err := svc.Query(context.Background(), domain.QueryRequest{Limit: 500})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected clamp to 10, got %d", len(entries))
	}
}

func TestQueryNewestFirst(t *testing.T) {
	svc := newTestService(t, config.DefaultInventoryConfig())

	logMovements(t, svc, 1, 3)

	entries, err := svc.Query(context.Background(), domain.QueryRequest{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].NewStock != 3 || entries[2].NewStock != 1 {
		t.Fatalf("expected newest first, got new stocks %d..%d", entries[0].NewStock, entries[2].NewStock)
	}
}

func TestQueryFilterByProduct(t *testing.T) {
	svc := newTestService(t, config.DefaultInventoryConfig())

	logMovements(t, svc, 7, 4)
	logMovements(t, svc, 8, 2)

	entries, err := svc.Query(context.Background(), domain.QueryRequest{
		ProductID: snowflake.ID(7).String(),
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries for product 7, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.ProductID != snowflake.ID(7).String() {
			t.Fatalf("unexpected product in result: %s", entry.ProductID)
		}
	}
}

func TestQueryInvalidProductID(t *testing.T) {
	svc := newTestService(t, config.DefaultInventoryConfig())

	_, err := svc.Query(context.Background(), domain.QueryRequest{ProductID: "abc"})
	if err != domain.ErrInvalidProductID {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
}

func TestLogChangeClassifies(t *testing.T) {
	svc := newTestService(t, config.DefaultInventoryConfig())
	ctx := context.Background()

	err := svc.LogChange(ctx, domain.ChangeInput{
		ProductID:   1,
		ProductName: "Mouse",
		OldStock:    0,
		NewStock:    25,
	})
	if err != nil {
		t.Fatalf("log change: %v", err)
	}

	entries, err := svc.Query(ctx, domain.QueryRequest{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.ChangeType != domain.ChangeInitial {
		t.Fatalf("expected INITIAL, got %s", entry.ChangeType)
	}
	if entry.Change != 25 {
		t.Fatalf("expected change 25, got %d", entry.Change)
	}
	if entry.ProductName != "Mouse" {
		t.Fatalf("expected snapshot name, got %s", entry.ProductName)
	}
}
