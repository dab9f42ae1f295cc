package bootstrap

import (
	"compras-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CatalogModule,
	FeedModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
