package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/stocklight/stocklight/internal/analytics"
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/migration"
	"github.com/stocklight/stocklight/internal/observability"
	"github.com/stocklight/stocklight/internal/product"
	"github.com/stocklight/stocklight/internal/seed"
	"github.com/stocklight/stocklight/internal/server"
	"github.com/stocklight/stocklight/internal/stockhistory"
	"github.com/stocklight/stocklight/internal/storage"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		storage.Module,
		migration.Module,

		// Functional domains
		product.Module,
		stockhistory.Module,
		analytics.Module,

		server.Module,
		seed.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
