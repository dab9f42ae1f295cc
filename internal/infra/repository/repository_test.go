//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-service/internal/infra"
	"compras-service/internal/infra/repository"
	"compras-service/internal/pkg/errs"
	"compras-service/internal/usecase/shared"
	"compras-service/tests/common/builder"
)

// stubDBTX records the statement a repository issues and returns canned
// results, so SQL-level behavior is testable without a live pool.
type stubDBTX struct {
	execErr error
	row     pgx.Row

	gotSQL  string
	gotArgs []any
}

func (s *stubDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.gotSQL = sql
	s.gotArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), s.execErr
}

func (s *stubDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.gotSQL = sql
	s.gotArgs = args
	return nil, errs.New("not implemented")
}

func (s *stubDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.gotSQL = sql
	s.gotArgs = args
	return s.row
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// =============================================================================
// CompraRepository
// =============================================================================

func TestCompraRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCompraRepository()

	entity, err := builder.NewCompraBuilder().WithMonto("49.9").BuildDomain()
	require.NoError(t, err)

	t.Run("success passes normalized columns", func(t *testing.T) {
		dbtx := &stubDBTX{}
		require.NoError(t, repo.Create(ctx, dbtx, entity))

		require.Len(t, dbtx.gotArgs, 7)
		assert.Equal(t, entity.ID(), dbtx.gotArgs[0])
		assert.Equal(t, "tenant-a", dbtx.gotArgs[1])
		assert.Equal(t, "maria", dbtx.gotArgs[2])
		assert.Equal(t, "curso-101", dbtx.gotArgs[3])
		assert.Equal(t, "Curso de Go", dbtx.gotArgs[4])
		assert.Equal(t, "49.90", dbtx.gotArgs[5], "monto travels with exactly two fraction digits")
		assert.Equal(t, entity.FechaCompra(), dbtx.gotArgs[6])
	})

	t.Run("unique violation maps to duplicate key", func(t *testing.T) {
		dbtx := &stubDBTX{execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}}
		err := repo.Create(ctx, dbtx, entity)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("driver failure maps to failure kind", func(t *testing.T) {
		dbtx := &stubDBTX{execErr: errs.New("connection reset")}
		err := repo.Create(ctx, dbtx, entity)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})
}

// =============================================================================
// IdempotencyRepository
// =============================================================================

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewIdempotencyRepository()
	actor := builder.NewCompraBuilder().BuildActor()
	key := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)

	t.Run("success", func(t *testing.T) {
		dbtx := &stubDBTX{}
		err := repo.TryInsert(ctx, dbtx, key, actor, "POST /api/compras", "hash", expiresAt)
		require.NoError(t, err)

		require.Len(t, dbtx.gotArgs, 6)
		assert.Equal(t, key, dbtx.gotArgs[0])
		assert.Equal(t, actor.TenantID, dbtx.gotArgs[1])
		assert.Equal(t, actor.UsuarioID, dbtx.gotArgs[2])
	})

	t.Run("driver failure", func(t *testing.T) {
		dbtx := &stubDBTX{execErr: errs.New("connection reset")}
		err := repo.TryInsert(ctx, dbtx, key, actor, "POST /api/compras", "hash", expiresAt)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})
}

func TestIdempotencyRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewIdempotencyRepository()
	actor := builder.NewCompraBuilder().BuildActor()
	key := uuid.New()

	t.Run("returns owned record", func(t *testing.T) {
		compraID := uuid.New()
		expiresAt := time.Now().Add(time.Hour)
		dbtx := &stubDBTX{row: fakeRow{scan: func(dest ...any) error {
			*dest[0].(*uuid.UUID) = key
			*dest[1].(*string) = actor.TenantID
			*dest[2].(*string) = actor.UsuarioID
			*dest[3].(*string) = shared.IdempotencyStatusCompleted
			*dest[4].(*string) = "hash"
			*dest[5].(**uuid.UUID) = &compraID
			*dest[6].(*time.Time) = expiresAt
			return nil
		}}}

		rec, err := repo.Get(ctx, dbtx, key, actor)
		require.NoError(t, err)

		assert.Equal(t, key, rec.Key)
		assert.Equal(t, shared.IdempotencyStatusCompleted, rec.Status)
		require.NotNil(t, rec.CompraID)
		assert.Equal(t, compraID, *rec.CompraID)
	})

	t.Run("key owned by another caller maps to conflict", func(t *testing.T) {
		// The lookup is keyed by tenant+usuario, so another caller's key
		// comes back as no rows.
		dbtx := &stubDBTX{row: fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}}

		_, err := repo.Get(ctx, dbtx, key, actor)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("driver failure", func(t *testing.T) {
		dbtx := &stubDBTX{row: fakeRow{scan: func(...any) error { return errs.New("connection reset") }}}

		_, err := repo.Get(ctx, dbtx, key, actor)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})
}

func TestIdempotencyRepository_UpdateStatusCompleted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewIdempotencyRepository()
	actor := builder.NewCompraBuilder().BuildActor()
	key := uuid.New()
	compraID := uuid.New()

	t.Run("success", func(t *testing.T) {
		dbtx := &stubDBTX{}
		require.NoError(t, repo.UpdateStatusCompleted(ctx, dbtx, key, actor, "response-hash", compraID))

		require.Len(t, dbtx.gotArgs, 5)
		assert.Equal(t, compraID, dbtx.gotArgs[4])
	})

	t.Run("driver failure", func(t *testing.T) {
		dbtx := &stubDBTX{execErr: errs.New("connection reset")}
		err := repo.UpdateStatusCompleted(ctx, dbtx, key, actor, "response-hash", compraID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})
}
