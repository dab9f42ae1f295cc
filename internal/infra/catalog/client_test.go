//go:build unit

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-service/internal/infra"
	"compras-service/internal/infra/catalog"
	"compras-service/internal/pkg/config"
)

func newTestClient(baseURL string, retries int) *catalog.Client {
	return catalog.NewClient(config.CatalogConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retries: retries,
	})
}

func TestFindCurso_Success(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cursos/buscar/curso-101", r.URL.Path)
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"curso":{"tenant_id":"tenant-a","curso_datos":{"nombre":"Curso de Go","precio":49.99}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	snap, err := client.FindCurso(context.Background(), "curso-101", "Bearer token-abc")
	require.NoError(t, err)

	assert.Equal(t, "tenant-a", snap.TenantID)
	assert.Equal(t, "Curso de Go", snap.Nombre)
	assert.Equal(t, "49.99", snap.Precio)
	assert.Equal(t, "Bearer token-abc", gotAuth.Load(), "caller credential must pass through unchanged")
}

func TestFindCurso_PrecioAsString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"curso":{"tenant_id":"tenant-a","curso_datos":{"nombre":"Curso de Go","precio":"120.50"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	snap, err := client.FindCurso(context.Background(), "curso-101", "tok")
	require.NoError(t, err)
	assert.Equal(t, "120.50", snap.Precio)
}

func TestFindCurso_NotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	_, err := client.FindCurso(context.Background(), "curso-missing", "tok")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, int32(1), calls.Load(), "absence must not be retried")
}

func TestFindCurso_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"curso":{"tenant_id":"tenant-a","curso_datos":{"nombre":"Curso de Go","precio":"10.00"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	snap, err := client.FindCurso(context.Background(), "curso-101", "tok")

	require.NoError(t, err)
	assert.Equal(t, "10.00", snap.Precio)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFindCurso_ExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 1)
	_, err := client.FindCurso(context.Background(), "curso-101", "tok")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFindCurso_UnexpectedStatusNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	_, err := client.FindCurso(context.Background(), "curso-101", "tok")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	assert.Equal(t, int32(1), calls.Load())
}

func TestFindCurso_MalformedResponse(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"curso":`},
		{name: "missing curso", body: `{"otro":true}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)
			_, err := client.FindCurso(context.Background(), "curso-101", "tok")

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, infra.KindUnavailable))
		})
	}
}

func TestFindCurso_Unreachable(t *testing.T) {
	// A closed server port forces a transport error on every attempt.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL, 1)
	_, err := client.FindCurso(context.Background(), "curso-101", "tok")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}

func TestFindCurso_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL, 2)
	_, err := client.FindCurso(ctx, "curso-101", "tok")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}
