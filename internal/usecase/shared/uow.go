package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"compras-service/internal/domain/compra"
	"compras-service/internal/infra/db"
)

// UnitOfWork scopes repository calls to the pool or to a single transaction.
// The purchase commit is a single atomic transaction; there is no partial
// state visible on failure.
type UnitOfWork interface {
	// DB: single-statement operations using implicit transactions
	DB() db.DBTX
	// Within: full transaction for the commit path
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type CompraRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *compra.Compra) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, dbtx db.DBTX, key uuid.UUID, actor Actor, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, dbtx db.DBTX, key uuid.UUID, actor Actor) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key uuid.UUID, actor Actor, responseHash string, compraID uuid.UUID) error
}
