package migration

import (
	"github.com/stocklight/stocklight/internal/config"
	productdomain "github.com/stocklight/stocklight/internal/product/domain"
	historydomain "github.com/stocklight/stocklight/internal/stockhistory/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if conn == nil {
			// The in-memory store has no schema to prepare.
			return nil
		}

		if cfg.StoreDriver == config.StoreDriverPostgres {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// MySQL and SQLite schemas come from the model definitions.
		return conn.AutoMigrate(
			&productdomain.Product{},
			&historydomain.StockHistory{},
		)
	}),
)
