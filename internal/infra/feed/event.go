// Package feed carries purchase store mutations over Kafka: a best-effort
// publisher on the write path and a batch-draining notifier on the read side.
package feed

import (
	"encoding/json"
	"time"

	"compras-service/internal/pkg/money"
	"compras-service/internal/usecase/shared"
)

const (
	EventInsert = "INSERT"
	EventModify = "MODIFY"
	EventRemove = "REMOVE"
)

// Snapshot is the wire form of a record inside a change event.
type Snapshot struct {
	CompraID    string      `json:"compra_id"`
	TenantID    string      `json:"tenant_id"`
	UsuarioID   string      `json:"usuario_id"`
	CursoID     string      `json:"curso_id"`
	NombreCurso string      `json:"nombre_curso"`
	MontoPagado json.Number `json:"monto_pagado"`
	FechaCompra time.Time   `json:"fecha_compra"`
}

// Event is one change-feed entry. The feed is at-least-once; consumers must
// tolerate redelivery.
type Event struct {
	Kind       string    `json:"kind"`
	Before     *Snapshot `json:"before,omitempty"`
	After      *Snapshot `json:"after,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func snapshotFrom(s shared.CompraSnapshot) *Snapshot {
	return &Snapshot{
		CompraID:    s.CompraID.String(),
		TenantID:    s.TenantID,
		UsuarioID:   s.UsuarioID,
		CursoID:     s.CursoID,
		NombreCurso: s.NombreCurso,
		MontoPagado: money.Number(s.MontoPagado),
		FechaCompra: s.FechaCompra,
	}
}

// partitionKey mirrors the store's composite key so one caller's events stay
// ordered within a partition.
func partitionKey(s shared.CompraSnapshot) string {
	return s.TenantID + "#" + s.UsuarioID
}

func decodeEvent(value []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(value, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
