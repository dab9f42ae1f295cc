package bootstrap

import (
	"go.uber.org/fx"

	"compras-service/internal/infra/catalog"
	"compras-service/internal/pkg/config"
	"compras-service/internal/usecase/shared"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		fx.Annotate(
			NewCatalogClient,
			fx.As(new(shared.CursoGateway)),
		),
	),
)

func NewCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog)
}
