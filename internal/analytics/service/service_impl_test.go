package service

import (
	"context"
	"testing"

	"github.com/stocklight/stocklight/internal/analytics/domain"
	productdomain "github.com/stocklight/stocklight/internal/product/domain"
	productrepository "github.com/stocklight/stocklight/internal/product/repository"
	"github.com/stocklight/stocklight/internal/storage/memory"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, products []productdomain.Product) (domain.Service, productdomain.Repository) {
	t.Helper()

	repo := productrepository.ProvideMemory(memory.NewLocker())
	ctx := context.Background()
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	return New(Params{Log: zap.NewNop(), Repo: repo}), repo
}

func TestSummary(t *testing.T) {
	svc, _ := newTestService(t, []productdomain.Product{
		{ID: 1, Name: "Mouse", SKU: "WM-001", Price: 10, Stock: 100, MinStock: 10},
		{ID: 2, Name: "Keyboard", SKU: "MK-002", Price: 50, Stock: 4, MinStock: 5},
		{ID: 3, Name: "Monitor", SKU: "MON-003", Price: 300, Stock: 0, MinStock: 5},
	})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TotalProducts != 3 {
		t.Fatalf("expected 3 products, got %d", summary.TotalProducts)
	}
	if summary.TotalInventoryValue != 1200 {
		t.Fatalf("expected inventory value 1200, got %v", summary.TotalInventoryValue)
	}
	if summary.LowStockCount != 1 || summary.OutOfStockCount != 1 {
		t.Fatalf("expected 1 low / 1 out, got %d / %d", summary.LowStockCount, summary.OutOfStockCount)
	}
	if summary.LowStockItems[0].SKU != "MK-002" {
		t.Fatalf("expected MK-002 low on stock, got %s", summary.LowStockItems[0].SKU)
	}
	if summary.OutOfStockItems[0].SKU != "MON-003" {
		t.Fatalf("expected MON-003 out of stock, got %s", summary.OutOfStockItems[0].SKU)
	}
}

func TestSummarySetsAreDisjoint(t *testing.T) {
	svc, _ := newTestService(t, []productdomain.Product{
		{ID: 1, Name: "Hub", SKU: "UCH-001", Price: 20, Stock: 0, MinStock: 10},
	})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.LowStockCount != 0 {
		t.Fatalf("empty position must not count as low stock, got %d", summary.LowStockCount)
	}
	if summary.OutOfStockCount != 1 {
		t.Fatalf("expected 1 out of stock, got %d", summary.OutOfStockCount)
	}
}

func TestSummaryEmptyCatalog(t *testing.T) {
	svc, _ := newTestService(t, nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TotalProducts != 0 || summary.TotalInventoryValue != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
	if summary.LowStockItems == nil || summary.OutOfStockItems == nil {
		t.Fatal("item lists must be empty, not null")
	}
}
