package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"compras-service/internal/infra"
	"compras-service/internal/infra/db"
	"compras-service/internal/usecase/queries"
)

type CompraReadStore struct {
	db db.DBTX
}

func NewCompraReadStore(dbtx db.DBTX) *CompraReadStore {
	return &CompraReadStore{db: dbtx}
}

// monto_pagado travels as text so the numeric value never passes through a
// binary float on the way into decimal.Decimal.
const findCompraByIDSQL = `
SELECT compra_id, tenant_id, usuario_id, curso_id, nombre_curso, monto_pagado::text, fecha_compra
FROM compras
WHERE compra_id = $1
`

func (r *CompraReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CompraView, error) {
	row := r.db.QueryRow(ctx, findCompraByIDSQL, id)
	view, err := scanCompraView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapErr(infra.KindNotFound, "compra not found", err)
		}
		return nil, infra.WrapErr(infra.KindFailure, "failed to find compra by id", err)
	}
	return view, nil
}

const findComprasByUsuarioSQL = `
SELECT compra_id, tenant_id, usuario_id, curso_id, nombre_curso, monto_pagado::text, fecha_compra
FROM compras
WHERE tenant_id = $1 AND usuario_id = $2
ORDER BY fecha_compra DESC, compra_id
`

// FindByUsuario returns the records for the exact composite key, newest
// purchase first.
func (r *CompraReadStore) FindByUsuario(ctx context.Context, tenantID, usuarioID string) ([]*queries.CompraView, error) {
	rows, err := r.db.Query(ctx, findComprasByUsuarioSQL, tenantID, usuarioID)
	if err != nil {
		return nil, infra.WrapErr(infra.KindFailure, "failed to query compras", err)
	}
	defer rows.Close()

	var views []*queries.CompraView
	for rows.Next() {
		view, err := scanCompraView(rows)
		if err != nil {
			return nil, infra.WrapErr(infra.KindFailure, "failed to scan compra row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapErr(infra.KindFailure, "failed to read compra rows", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompraView(row rowScanner) (*queries.CompraView, error) {
	var (
		view  queries.CompraView
		monto string
	)
	if err := row.Scan(
		&view.CompraID,
		&view.TenantID,
		&view.UsuarioID,
		&view.CursoID,
		&view.NombreCurso,
		&monto,
		&view.FechaCompra,
	); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(monto)
	if err != nil {
		return nil, err
	}
	view.MontoPagado = parsed
	return &view, nil
}
