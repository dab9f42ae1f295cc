//go:build unit

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"compras-service/internal/domain/compra"
	"compras-service/internal/usecase/queries"
	"compras-service/internal/usecase/shared"
)

// CompraBuilder assembles valid purchase fixtures that individual tests
// mutate into their failure cases.
type CompraBuilder struct {
	tenantID    string
	usuarioID   string
	cursoID     string
	nombreCurso string
	monto       decimal.Decimal
	now         time.Time
}

func NewCompraBuilder() *CompraBuilder {
	return &CompraBuilder{
		tenantID:    "tenant-a",
		usuarioID:   "maria",
		cursoID:     "curso-101",
		nombreCurso: "Curso de Go",
		monto:       decimal.RequireFromString("49.99"),
		now:         time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func (b *CompraBuilder) WithTenantID(v string) *CompraBuilder    { b.tenantID = v; return b }
func (b *CompraBuilder) WithUsuarioID(v string) *CompraBuilder   { b.usuarioID = v; return b }
func (b *CompraBuilder) WithCursoID(v string) *CompraBuilder     { b.cursoID = v; return b }
func (b *CompraBuilder) WithNombreCurso(v string) *CompraBuilder { b.nombreCurso = v; return b }
func (b *CompraBuilder) WithTime(v time.Time) *CompraBuilder     { b.now = v; return b }

func (b *CompraBuilder) WithMonto(v string) *CompraBuilder {
	b.monto = decimal.RequireFromString(v)
	return b
}

func (b *CompraBuilder) BuildDomain() (*compra.Compra, error) {
	return compra.New(b.tenantID, b.usuarioID, b.cursoID, b.nombreCurso, b.monto, b.now)
}

func (b *CompraBuilder) BuildView() *queries.CompraView {
	return &queries.CompraView{
		CompraID:    uuid.New(),
		TenantID:    b.tenantID,
		UsuarioID:   b.usuarioID,
		CursoID:     b.cursoID,
		NombreCurso: b.nombreCurso,
		MontoPagado: b.monto,
		FechaCompra: b.now,
	}
}

func (b *CompraBuilder) BuildSnapshot() shared.CompraSnapshot {
	return shared.CompraSnapshot{
		CompraID:    uuid.New(),
		TenantID:    b.tenantID,
		UsuarioID:   b.usuarioID,
		CursoID:     b.cursoID,
		NombreCurso: b.nombreCurso,
		MontoPagado: b.monto,
		FechaCompra: b.now,
	}
}

func (b *CompraBuilder) BuildActor() shared.Actor {
	return shared.Actor{
		TenantID:   b.tenantID,
		UsuarioID:  b.usuarioID,
		Credential: "test-credential",
	}
}

func (b *CompraBuilder) BuildCursoSnapshot() *shared.CursoSnapshot {
	return &shared.CursoSnapshot{
		TenantID: b.tenantID,
		Nombre:   b.nombreCurso,
		Precio:   b.monto.String(),
	}
}
