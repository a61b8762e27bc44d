package stockhistory

import (
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/stockhistory/domain"
	"github.com/stocklight/stocklight/internal/stockhistory/repository"
	"github.com/stocklight/stocklight/internal/stockhistory/service"
	"github.com/stocklight/stocklight/internal/storage/memory"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("stockhistory.service",
	fx.Provide(provideRepository),
	fx.Provide(service.New),
)

func provideRepository(cfg config.Config, gdb *gorm.DB, locker *memory.Locker) domain.Repository {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return repository.ProvideMemory(locker)
	}
	return repository.Provide(gdb)
}
