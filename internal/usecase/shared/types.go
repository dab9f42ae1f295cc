package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor is the verified identity of the caller plus the raw credential, which
// is passed through unchanged to upstream services for their own
// authorization. It is never derived from request bodies.
type Actor struct {
	TenantID   string
	UsuarioID  string
	Credential string
}

// CursoSnapshot is a fresh, uncached read from the course directory. Precio
// stays a decimal string until the command layer quantizes it.
type CursoSnapshot struct {
	TenantID string
	Nombre   string
	Precio   string
}

// CompraSnapshot is the write-side view of a committed record, used for the
// change feed and replay responses.
type CompraSnapshot struct {
	CompraID    uuid.UUID
	TenantID    string
	UsuarioID   string
	CursoID     string
	NombreCurso string
	MontoPagado decimal.Decimal
	FechaCompra time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	TenantID    string
	UsuarioID   string
	Status      string
	RequestHash string
	CompraID    *uuid.UUID
	ExpiresAt   time.Time
}

// CursoGateway resolves a course in the external directory using the caller's
// own credential. Implementations distinguish absence (KindNotFound) from
// transport failure (KindUnavailable).
type CursoGateway interface {
	FindCurso(ctx context.Context, cursoID, credential string) (*CursoSnapshot, error)
}

// ChangeFeed receives store mutations after commit. Publishing is
// best-effort: implementations must never fail the calling request.
type ChangeFeed interface {
	PublishInsert(ctx context.Context, after CompraSnapshot)
}
