package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"compras-service/internal/domain/compra"
	"compras-service/internal/infra"
	"compras-service/internal/infra/db"
	"compras-service/internal/pkg/clock"
	"compras-service/internal/pkg/errs"
	"compras-service/internal/pkg/money"
	"compras-service/internal/usecase/queries"
	"compras-service/internal/usecase/shared"
)

var (
	ErrCursoNotFound          = errs.New("curso not found")
	ErrTenantMismatch         = errs.New("curso belongs to another tenant")
	ErrMontoInvalido          = errs.New("invalid course price")
	ErrCatalogUnavailable     = errs.New("course catalog unavailable")
	ErrDuplicateCompra        = errs.New("duplicate purchase request")
	ErrIdempotencyKeyRequired = errs.New("idempotency-key header required")

	// Error markers for categorization
	ErrDomainValidationFailed  = errs.New("domain validation failed")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const createEndpoint = "POST /api/compras"

const idempotencyTTL = 24 * time.Hour

type CreateCompraParams struct {
	CursoID string
}

type CreateCompraResult struct {
	Compra     *queries.CompraView
	IsReplayed bool
}

type CompraCommands interface {
	CreateCompra(ctx context.Context, actor shared.Actor, params CreateCompraParams, idempotencyKey uuid.UUID) (*CreateCompraResult, error)
}

type compraCommandsImpl struct {
	uow        shared.UnitOfWork
	compraRepo shared.CompraRepository
	idemRepo   shared.IdempotencyRepository
	reads      queries.CompraReadStore
	catalog    shared.CursoGateway
	feed       shared.ChangeFeed
	clock      clock.Clock
}

func NewCompraCommands(
	uow shared.UnitOfWork,
	compraRepo shared.CompraRepository,
	idemRepo shared.IdempotencyRepository,
	reads queries.CompraReadStore,
	catalog shared.CursoGateway,
	feed shared.ChangeFeed,
	clock clock.Clock,
) CompraCommands {
	return &compraCommandsImpl{
		uow:        uow,
		compraRepo: compraRepo,
		idemRepo:   idemRepo,
		reads:      reads,
		catalog:    catalog,
		feed:       feed,
		clock:      clock,
	}
}

// CreateCompra validates and commits a purchase. All rejections happen before
// any store mutation; the commit itself is one atomic transaction and is
// never retried here (the caller retries on Internal/UpstreamUnavailable).
func (c *compraCommandsImpl) CreateCompra(
	ctx context.Context,
	actor shared.Actor,
	params CreateCompraParams,
	idempotencyKey uuid.UUID,
) (*CreateCompraResult, error) {
	requestHash := c.requestHash(actor, params)
	expiresAt := c.clock.Now().Add(idempotencyTTL)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, actor, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateCompraResult{Compra: replayed, IsReplayed: true}, nil
	}

	view, err := c.commitNewCompra(ctx, actor, params, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateCompraResult{Compra: view}, nil
}

func (c *compraCommandsImpl) handleIdempotency(
	ctx context.Context,
	key uuid.UUID,
	actor shared.Actor,
	requestHash string,
	expiresAt time.Time,
) (*queries.CompraView, error) {
	if err := c.idemRepo.TryInsert(ctx, c.uow.DB(), key, actor, createEndpoint, requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := c.idemRepo.Get(ctx, c.uow.DB(), key, actor)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateCompra
		}
		if existing.CompraID == nil {
			return nil, errs.New("completed request missing result compra id")
		}
		view, err := c.reads.FindByID(ctx, *existing.CompraID)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		return view, nil

	case shared.IdempotencyStatusProcessing:
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateCompra
		}
		return nil, nil

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *compraCommandsImpl) commitNewCompra(
	ctx context.Context,
	actor shared.Actor,
	params CreateCompraParams,
	idempotencyKey uuid.UUID,
) (*queries.CompraView, error) {
	curso, err := c.resolveCurso(ctx, params.CursoID, actor.Credential)
	if err != nil {
		return nil, err
	}

	// Cross-tenant isolation: checked before any monetary or persistence step.
	if curso.TenantID != actor.TenantID {
		return nil, ErrTenantMismatch
	}

	// Catalog-authoritative price: quantized half-up to 2 fraction digits,
	// rejected unless strictly positive.
	monto, err := money.Parse(curso.Precio)
	if err != nil {
		return nil, errs.Mark(err, ErrMontoInvalido)
	}

	entity, err := compra.New(actor.TenantID, actor.UsuarioID, params.CursoID, curso.Nombre, monto, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	view := viewFromEntity(entity)

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.compraRepo.Create(ctx, tx, entity); err != nil {
			return err
		}
		return c.idemRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, actor, c.responseHash(view), entity.ID())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateCompra
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.feed.PublishInsert(ctx, snapshotFromEntity(entity))

	return view, nil
}

func (c *compraCommandsImpl) resolveCurso(ctx context.Context, cursoID, credential string) (*shared.CursoSnapshot, error) {
	curso, err := c.catalog.FindCurso(ctx, cursoID, credential)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCursoNotFound
		}
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrCatalogUnavailable)
		}
		return nil, errs.Wrap(err, "failed to resolve curso")
	}
	return curso, nil
}

func viewFromEntity(e *compra.Compra) *queries.CompraView {
	return &queries.CompraView{
		CompraID:    e.ID(),
		TenantID:    e.TenantID(),
		UsuarioID:   e.UsuarioID(),
		CursoID:     e.CursoID(),
		NombreCurso: e.NombreCurso(),
		MontoPagado: e.MontoPagado(),
		FechaCompra: e.FechaCompra(),
	}
}

func snapshotFromEntity(e *compra.Compra) shared.CompraSnapshot {
	return shared.CompraSnapshot{
		CompraID:    e.ID(),
		TenantID:    e.TenantID(),
		UsuarioID:   e.UsuarioID(),
		CursoID:     e.CursoID(),
		NombreCurso: e.NombreCurso(),
		MontoPagado: e.MontoPagado(),
		FechaCompra: e.FechaCompra(),
	}
}

func (c *compraCommandsImpl) requestHash(actor shared.Actor, params CreateCompraParams) string {
	data, _ := json.Marshal(map[string]string{
		"tenant_id":  actor.TenantID,
		"usuario_id": actor.UsuarioID,
		"curso_id":   params.CursoID,
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (c *compraCommandsImpl) responseHash(view *queries.CompraView) string {
	data, _ := json.Marshal(view)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
