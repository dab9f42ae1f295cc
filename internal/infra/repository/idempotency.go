package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"compras-service/internal/infra"
	"compras-service/internal/infra/db"
	"compras-service/internal/usecase/shared"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// Expired keys are reclaimed in place so a retried request after the TTL
// behaves like a fresh one.
const tryInsertIdempotencySQL = `
INSERT INTO idempotency_keys (key, tenant_id, usuario_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, $5, 'processing', $6)
ON CONFLICT (key) DO UPDATE
SET tenant_id = EXCLUDED.tenant_id,
    usuario_id = EXCLUDED.usuario_id,
    endpoint = EXCLUDED.endpoint,
    request_hash = EXCLUDED.request_hash,
    status = 'processing',
    compra_id = NULL,
    expires_at = EXCLUDED.expires_at
WHERE idempotency_keys.expires_at < now()
`

func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key uuid.UUID, actor shared.Actor, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := dbtx.Exec(ctx, tryInsertIdempotencySQL, key, actor.TenantID, actor.UsuarioID, endpoint, requestHash, expiresAt)
	if err != nil {
		return infra.WrapErr(infra.KindFailure, "failed to insert idempotency key", err)
	}
	return nil
}

const getIdempotencySQL = `
SELECT key, tenant_id, usuario_id, status, request_hash, compra_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND tenant_id = $2 AND usuario_id = $3
`

func (r *IdempotencyRepository) Get(ctx context.Context, dbtx db.DBTX, key uuid.UUID, actor shared.Actor) (*shared.IdempotencyRecord, error) {
	var rec shared.IdempotencyRecord
	err := dbtx.QueryRow(ctx, getIdempotencySQL, key, actor.TenantID, actor.UsuarioID).Scan(
		&rec.Key,
		&rec.TenantID,
		&rec.UsuarioID,
		&rec.Status,
		&rec.RequestHash,
		&rec.CompraID,
		&rec.ExpiresAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			// Key exists under another tenant/usuario: treat as a conflict,
			// never leak the other party's state.
			return nil, infra.WrapErr(infra.KindConflict, "idempotency key owned by another caller", err)
		}
		return nil, infra.WrapErr(infra.KindFailure, "failed to get idempotency key", err)
	}
	return &rec, nil
}

const completeIdempotencySQL = `
UPDATE idempotency_keys
SET status = 'completed', response_hash = $4, compra_id = $5
WHERE key = $1 AND tenant_id = $2 AND usuario_id = $3
`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key uuid.UUID, actor shared.Actor, responseHash string, compraID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, completeIdempotencySQL, key, actor.TenantID, actor.UsuarioID, responseHash, compraID)
	if err != nil {
		return infra.WrapErr(infra.KindFailure, "failed to complete idempotency key", err)
	}
	return nil
}
