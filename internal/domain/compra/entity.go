package compra

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingTenant  = errors.New("tenant id is required")
	ErrMissingUsuario = errors.New("usuario id is required")
	ErrMissingCurso   = errors.New("curso id is required")
	ErrInvalidMonto   = errors.New("monto must be a positive amount with two fraction digits")
)

// Compra is an immutable purchase record. Identity fields always come from a
// verified claim; the record is created exactly once and never updated.
type Compra struct {
	id          uuid.UUID
	tenantID    string
	usuarioID   string
	cursoID     string
	nombreCurso string
	montoPagado decimal.Decimal
	fechaCompra time.Time
}

// New mints a record with a fresh compra_id and a UTC commit timestamp.
// monto must already be quantized (see pkg/money); a non-positive or
// over-precise amount is rejected here as a last line of defense.
func New(tenantID, usuarioID, cursoID, nombreCurso string, monto decimal.Decimal, now time.Time) (*Compra, error) {
	if tenantID == "" {
		return nil, ErrMissingTenant
	}
	if usuarioID == "" {
		return nil, ErrMissingUsuario
	}
	if cursoID == "" {
		return nil, ErrMissingCurso
	}
	if !monto.IsPositive() || monto.Exponent() < -2 {
		return nil, ErrInvalidMonto
	}

	return &Compra{
		id:          uuid.New(),
		tenantID:    tenantID,
		usuarioID:   usuarioID,
		cursoID:     cursoID,
		nombreCurso: nombreCurso,
		montoPagado: monto,
		fechaCompra: now.UTC(),
	}, nil
}

func (c *Compra) ID() uuid.UUID                { return c.id }
func (c *Compra) TenantID() string             { return c.tenantID }
func (c *Compra) UsuarioID() string            { return c.usuarioID }
func (c *Compra) CursoID() string              { return c.cursoID }
func (c *Compra) NombreCurso() string          { return c.nombreCurso }
func (c *Compra) MontoPagado() decimal.Decimal { return c.montoPagado }
func (c *Compra) FechaCompra() time.Time       { return c.fechaCompra }
