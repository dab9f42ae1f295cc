package uow

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"compras-service/internal/infra/db"
	"compras-service/internal/pkg/errs"
	"compras-service/internal/usecase/shared"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

func (u *PostgresUoW) DB() db.DBTX {
	return u.pool
}

// Within runs fn inside a single ReadCommitted transaction. The purchase
// commit is all-or-nothing per call and is never retried here.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err := fn(ctx, pgxTx); err != nil {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}

	return nil
}
