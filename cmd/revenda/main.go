package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/adjustment"
	"github.com/revendahq/revenda/internal/clock"
	"github.com/revendahq/revenda/internal/companycost"
	"github.com/revendahq/revenda/internal/config"
	"github.com/revendahq/revenda/internal/contract"
	"github.com/revendahq/revenda/internal/migration"
	"github.com/revendahq/revenda/internal/observability"
	"github.com/revendahq/revenda/internal/override"
	"github.com/revendahq/revenda/internal/plan"
	"github.com/revendahq/revenda/internal/report"
	"github.com/revendahq/revenda/internal/scheduler"
	"github.com/revendahq/revenda/internal/seed"
	"github.com/revendahq/revenda/internal/server"
	"github.com/revendahq/revenda/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		seed.Module,

		// Functional domains
		contract.Module,
		adjustment.Module,
		plan.Module,
		override.Module,
		companycost.Module,
		report.Module,
		scheduler.Module,

		server.Module,
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
