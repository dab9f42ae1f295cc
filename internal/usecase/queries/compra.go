package queries

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"compras-service/internal/pkg/errs"
	"compras-service/internal/pkg/money"
	"compras-service/internal/usecase/shared"
)

// Read models (DTO for read side)
type CompraView struct {
	CompraID    uuid.UUID       `json:"compra_id"`
	TenantID    string          `json:"tenant_id"`
	UsuarioID   string          `json:"usuario_id"`
	CursoID     string          `json:"curso_id"`
	NombreCurso string          `json:"nombre_curso"`
	MontoPagado decimal.Decimal `json:"monto_pagado"`
	FechaCompra time.Time       `json:"fecha_compra"`
}

// CursoDetalle is the live directory enrichment attached to each listed
// purchase. When the lookup fails, Disponible is false and Mensaje carries a
// diagnostic placeholder instead of failing the whole listing.
type CursoDetalle struct {
	Nombre     string
	Precio     decimal.Decimal
	Disponible bool
	Mensaje    string
}

type EnrichedCompra struct {
	Compra *CompraView
	Curso  CursoDetalle
}

type CompraReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CompraView, error)
	FindByUsuario(ctx context.Context, tenantID, usuarioID string) ([]*CompraView, error)
}

type CompraQueries interface {
	ListByUsuario(ctx context.Context, actor shared.Actor) ([]*EnrichedCompra, error)
}

type compraQueriesImpl struct {
	store         CompraReadStore
	catalog       shared.CursoGateway
	workers       int
	lookupTimeout time.Duration
}

func NewCompraQueries(store CompraReadStore, catalog shared.CursoGateway, workers int, lookupTimeout time.Duration) CompraQueries {
	if workers <= 0 {
		workers = 4
	}
	if lookupTimeout <= 0 {
		lookupTimeout = 5 * time.Second
	}
	return &compraQueriesImpl{
		store:         store,
		catalog:       catalog,
		workers:       workers,
		lookupTimeout: lookupTimeout,
	}
}

// ListByUsuario returns the caller's purchases, newest first. The store is
// keyed strictly by the actor's tenant+usuario, so a caller can never see
// another tenant's or user's records.
func (q *compraQueriesImpl) ListByUsuario(ctx context.Context, actor shared.Actor) ([]*EnrichedCompra, error) {
	rows, err := q.store.FindByUsuario(ctx, actor.TenantID, actor.UsuarioID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list compras")
	}

	enriched := make([]*EnrichedCompra, len(rows))

	// Bounded fan-out: one directory lookup per record, results keep the
	// store's ordering by writing into fixed slots.
	sem := make(chan struct{}, q.workers)
	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, row *CompraView) {
			defer wg.Done()
			defer func() { <-sem }()
			enriched[i] = &EnrichedCompra{
				Compra: row,
				Curso:  q.lookupCurso(ctx, row.CursoID, actor.Credential),
			}
		}(i, row)
	}
	wg.Wait()

	return enriched, nil
}

func (q *compraQueriesImpl) lookupCurso(ctx context.Context, cursoID, credential string) CursoDetalle {
	lookupCtx, cancel := context.WithTimeout(ctx, q.lookupTimeout)
	defer cancel()

	snap, err := q.catalog.FindCurso(lookupCtx, cursoID, credential)
	if err != nil {
		return CursoDetalle{
			Disponible: false,
			Mensaje:    "informacion del curso no disponible",
		}
	}

	precio, err := money.Parse(snap.Precio)
	if err != nil {
		return CursoDetalle{
			Nombre:     snap.Nombre,
			Disponible: false,
			Mensaje:    "precio del curso no disponible",
		}
	}

	return CursoDetalle{
		Nombre:     snap.Nombre,
		Precio:     precio,
		Disponible: true,
	}
}
