package seed

import (
	"context"

	"github.com/stocklight/stocklight/internal/config"
	productdomain "github.com/stocklight/stocklight/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("seed",
	fx.Invoke(EnsureDemoInventory),
)

type demoProduct struct {
	name     string
	sku      string
	price    float64
	stock    int64
	minStock int64
}

var demoInventory = []demoProduct{
	{name: "Wireless Mouse", sku: "WM-001", price: 29.99, stock: 150, minStock: 20},
	{name: "Mechanical Keyboard", sku: "MK-002", price: 89.99, stock: 75, minStock: 15},
	{name: "USB-C Hub", sku: "UCH-003", price: 49.99, stock: 8, minStock: 10},
	{name: "27in Monitor", sku: "MON-004", price: 299.99, stock: 0, minStock: 5},
	{name: "Laptop Stand", sku: "LS-005", price: 39.99, stock: 42, minStock: 10},
	{name: "Webcam 1080p", sku: "WC-006", price: 59.99, stock: 3, minStock: 5},
}

// EnsureDemoInventory loads a small demo catalog on startup. Creation
// goes through the product service so each row gets its initial ledger
// entry. Existing SKUs are left alone.
func EnsureDemoInventory(cfg config.Config, log *zap.Logger, svc productdomain.Service) error {
	if !cfg.BootstrapDemoData {
		return nil
	}
	log = log.Named("seed")

	ctx := context.Background()
	for _, item := range demoInventory {
		price, stock, minStock := item.price, item.stock, item.minStock
		_, err := svc.Create(ctx, productdomain.CreateRequest{
			Name:     item.name,
			SKU:      item.sku,
			Price:    &price,
			Stock:    &stock,
			MinStock: &minStock,
		})
		if err == productdomain.ErrSKUConflict {
			continue
		}
		if err != nil {
			return err
		}
		log.Info("demo product seeded", zap.String("sku", item.sku))
	}
	return nil
}
