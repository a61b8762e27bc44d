package storage

import (
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/storage/memory"
	"github.com/stocklight/stocklight/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides the storage capability shared by all domains: the
// GORM handle (nil for the memory driver), the volatile-store locker,
// and the unit-of-work runner matching the configured driver.
var Module = fx.Module("storage",
	fx.Provide(db.Open),
	fx.Provide(memory.NewLocker),
	fx.Provide(NewTxRunner),
)

func NewTxRunner(cfg config.Config, gdb *gorm.DB, locker *memory.Locker) db.TxRunner {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return locker
	}
	return db.NewTxRunner(gdb)
}
