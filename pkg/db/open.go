package db

import (
	"fmt"
	"time"

	"github.com/stocklight/stocklight/internal/config"
	obslogger "github.com/stocklight/stocklight/internal/observability/logger"
	"gorm.io/gorm"
)

// Open connects the configured store driver. The memory driver carries
// no database handle, so Open returns nil for it. A connection failure
// for a persistent driver aborts startup.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return nil, nil
	}

	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: obslogger.NewGormLogger(obslogger.DefaultGormLoggerConfig()),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s store: %w", cfg.StoreDriver, err)
	}

	return gdb, nil
}
