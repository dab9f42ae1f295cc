package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"compras-service/internal/infra/db"
	"compras-service/internal/infra/readstore"
	"compras-service/internal/infra/repository"
	"compras-service/internal/infra/uow"
	"compras-service/internal/usecase/queries"
	"compras-service/internal/usecase/shared"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewCompraRepository,
			fx.As(new(shared.CompraRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyRepository)),
		),
		fx.Annotate(
			readstore.NewCompraReadStore,
			fx.As(new(queries.CompraReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
