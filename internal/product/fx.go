package product

import (
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/product/domain"
	"github.com/stocklight/stocklight/internal/product/repository"
	"github.com/stocklight/stocklight/internal/product/service"
	"github.com/stocklight/stocklight/internal/storage/memory"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("product.service",
	fx.Provide(provideRepository),
	fx.Provide(service.New),
)

func provideRepository(cfg config.Config, gdb *gorm.DB, locker *memory.Locker) domain.Repository {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return repository.ProvideMemory(locker)
	}
	return repository.Provide(gdb)
}
