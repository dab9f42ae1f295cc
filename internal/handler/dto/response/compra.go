package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"compras-service/internal/pkg/money"
	"compras-service/internal/usecase/queries"
)

type CreateCompraResponse struct {
	CompraID    uuid.UUID `json:"compra_id"`
	FechaCompra time.Time `json:"fecha_compra"`
}

// CursoDetalleResponse carries the live enrichment, or a placeholder when the
// directory lookup failed for this record.
type CursoDetalleResponse struct {
	Nombre     string      `json:"nombre,omitempty"`
	Precio     json.Number `json:"precio,omitempty"`
	Disponible bool        `json:"disponible"`
	Mensaje    string      `json:"mensaje,omitempty"`
}

type CompraResponse struct {
	CompraID    uuid.UUID            `json:"compra_id"`
	CursoID     string               `json:"curso_id"`
	NombreCurso string               `json:"nombre_curso"`
	MontoPagado json.Number          `json:"monto_pagado"`
	FechaCompra time.Time            `json:"fecha_compra"`
	Curso       CursoDetalleResponse `json:"curso"`
}

type CompraListResponse struct {
	Compras      []*CompraResponse `json:"compras"`
	TotalCompras int               `json:"total_compras"`
}

func FromCompraView(rm *queries.CompraView) *CreateCompraResponse {
	return &CreateCompraResponse{
		CompraID:    rm.CompraID,
		FechaCompra: rm.FechaCompra,
	}
}

func FromEnrichedCompras(rms []*queries.EnrichedCompra) *CompraListResponse {
	compras := make([]*CompraResponse, len(rms))
	for i, rm := range rms {
		compras[i] = fromEnrichedCompra(rm)
	}
	return &CompraListResponse{
		Compras:      compras,
		TotalCompras: len(compras),
	}
}

func fromEnrichedCompra(rm *queries.EnrichedCompra) *CompraResponse {
	detalle := CursoDetalleResponse{
		Nombre:     rm.Curso.Nombre,
		Disponible: rm.Curso.Disponible,
		Mensaje:    rm.Curso.Mensaje,
	}
	if rm.Curso.Disponible {
		detalle.Precio = money.Number(rm.Curso.Precio)
	}

	return &CompraResponse{
		CompraID:    rm.Compra.CompraID,
		CursoID:     rm.Compra.CursoID,
		NombreCurso: rm.Compra.NombreCurso,
		MontoPagado: money.Number(rm.Compra.MontoPagado),
		FechaCompra: rm.Compra.FechaCompra,
		Curso:       detalle,
	}
}
