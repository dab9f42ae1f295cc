package components

import (
	"go.uber.org/fx"

	"compras-service/internal/pkg/clock"
	"compras-service/internal/pkg/config"
	"compras-service/internal/usecase"
	"compras-service/internal/usecase/commands"
	"compras-service/internal/usecase/queries"
	"compras-service/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		commands.NewCompraCommands,
		NewCompraQueries,
	),
)

func NewCompraQueries(store queries.CompraReadStore, catalog shared.CursoGateway, cfg config.Config) queries.CompraQueries {
	return queries.NewCompraQueries(store, catalog, cfg.Catalog.EnrichWorkers, cfg.Catalog.Timeout)
}
