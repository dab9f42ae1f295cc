package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"compras-service/internal/domain/compra"
	"compras-service/internal/infra"
	"compras-service/internal/infra/db"
)

const pgErrCodeUniqueViolation = "23505"

type CompraRepository struct{}

func NewCompraRepository() *CompraRepository {
	return &CompraRepository{}
}

const insertCompraSQL = `
INSERT INTO compras (compra_id, tenant_id, usuario_id, curso_id, nombre_curso, monto_pagado, fecha_compra)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Create inserts a single record. Records are immutable, so there is no
// update path and a primary-key collision is a hard conflict.
func (r *CompraRepository) Create(ctx context.Context, dbtx db.DBTX, c *compra.Compra) error {
	_, err := dbtx.Exec(ctx, insertCompraSQL,
		c.ID(),
		c.TenantID(),
		c.UsuarioID(),
		c.CursoID(),
		c.NombreCurso(),
		c.MontoPagado().StringFixed(2),
		c.FechaCompra(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapErr(infra.KindDuplicateKey, "compra already exists", err)
		}
		return infra.WrapErr(infra.KindFailure, "failed to insert compra", err)
	}
	return nil
}
