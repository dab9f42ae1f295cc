package request

// CreateCompraRequest carries only the course reference. Identity comes from
// the verified claim and the amount from the course directory, so neither is
// accepted from the client.
type CreateCompraRequest struct {
	CursoID string `json:"curso_id" binding:"required"`
}
