// Package catalog is the HTTP gateway to the external course directory.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"compras-service/internal/infra"
	"compras-service/internal/pkg/config"
	"compras-service/internal/pkg/errs"
	"compras-service/internal/usecase/shared"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	retries    int
}

func NewClient(cfg config.CatalogConfig) *Client {
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		retries:    retries,
	}
}

// wire shape of the directory response
type cursoEnvelope struct {
	Curso *cursoPayload `json:"curso"`
}

type cursoPayload struct {
	TenantID   string     `json:"tenant_id"`
	CursoDatos cursoDatos `json:"curso_datos"`
}

type cursoDatos struct {
	Nombre string      `json:"nombre"`
	Precio json.Number `json:"precio"`
}

// FindCurso resolves a course, passing the caller's credential through
// unchanged. Absence (404) is KindNotFound; transport failures and 5xx are
// KindUnavailable. Only this idempotent GET is retried, never a commit.
func (c *Client) FindCurso(ctx context.Context, cursoID, credential string) (*shared.CursoSnapshot, error) {
	endpoint := fmt.Sprintf("%s/cursos/buscar/%s", c.baseURL, url.PathEscape(cursoID))

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 200 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, infra.WrapErr(infra.KindUnavailable, "curso lookup canceled", ctx.Err())
			case <-time.After(backoff):
			}
		}

		snap, err, retryable := c.fetch(ctx, endpoint, credential)
		if err == nil {
			return snap, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, endpoint, credential string) (snap *shared.CursoSnapshot, err error, retryable bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, infra.WrapErr(infra.KindUnavailable, "failed to build curso request", err), false
	}
	req.Header.Set("Authorization", credential)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapErr(infra.KindUnavailable, "curso directory unreachable", err), true
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, infra.WrapErr(infra.KindNotFound, "curso not found in directory", nil), false
	case resp.StatusCode >= 500:
		return nil, infra.WrapErr(infra.KindUnavailable, fmt.Sprintf("curso directory returned %d", resp.StatusCode), nil), true
	case resp.StatusCode != http.StatusOK:
		return nil, infra.WrapErr(infra.KindUnavailable, fmt.Sprintf("curso directory returned %d", resp.StatusCode), nil), false
	}

	var envelope cursoEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, infra.WrapErr(infra.KindUnavailable, "invalid curso directory response", err), false
	}
	if envelope.Curso == nil {
		return nil, infra.WrapErr(infra.KindUnavailable, "curso directory response missing curso", errs.New("empty envelope")), false
	}

	return &shared.CursoSnapshot{
		TenantID: envelope.Curso.TenantID,
		Nombre:   envelope.Curso.CursoDatos.Nombre,
		Precio:   envelope.Curso.CursoDatos.Precio.String(),
	}, nil, false
}
