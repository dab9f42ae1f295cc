//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-service/internal/infra"
	"compras-service/internal/infra/readstore"
	"compras-service/internal/pkg/errs"
)

type compraRow struct {
	compraID    uuid.UUID
	tenantID    string
	usuarioID   string
	cursoID     string
	nombreCurso string
	monto       string
	fecha       time.Time
}

func (r compraRow) fill(dest ...any) {
	*dest[0].(*uuid.UUID) = r.compraID
	*dest[1].(*string) = r.tenantID
	*dest[2].(*string) = r.usuarioID
	*dest[3].(*string) = r.cursoID
	*dest[4].(*string) = r.nombreCurso
	*dest[5].(*string) = r.monto
	*dest[6].(*time.Time) = r.fecha
}

func sampleRow(monto string, fecha time.Time) compraRow {
	return compraRow{
		compraID:    uuid.New(),
		tenantID:    "tenant-a",
		usuarioID:   "maria",
		cursoID:     "curso-101",
		nombreCurso: "Curso de Go",
		monto:       monto,
		fecha:       fecha,
	}
}

type stubDBTX struct {
	row      pgx.Row
	rows     pgx.Rows
	queryErr error

	gotSQL  string
	gotArgs []any
}

func (s *stubDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errs.New("not implemented")
}

func (s *stubDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.gotSQL = sql
	s.gotArgs = args
	return s.rows, s.queryErr
}

func (s *stubDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.gotSQL = sql
	s.gotArgs = args
	return s.row
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeRows walks a fixed result set through the pgx.Rows surface.
type fakeRows struct {
	rows []compraRow
	idx  int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.rows) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	f.rows[f.idx-1].fill(dest...)
	return nil
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) Err() error                                   { return f.err }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success parses monto text into decimal", func(t *testing.T) {
		row := sampleRow("120.50", time.Now().UTC())
		dbtx := &stubDBTX{row: fakeRow{scan: func(dest ...any) error {
			row.fill(dest...)
			return nil
		}}}

		store := readstore.NewCompraReadStore(dbtx)
		view, err := store.FindByID(ctx, row.compraID)
		require.NoError(t, err)

		assert.Equal(t, []any{row.compraID}, dbtx.gotArgs)
		assert.Equal(t, "120.50", view.MontoPagado.StringFixed(2))
		assert.Equal(t, "Curso de Go", view.NombreCurso)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		dbtx := &stubDBTX{row: fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}}

		store := readstore.NewCompraReadStore(dbtx)
		_, err := store.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("scan failure maps to failure kind", func(t *testing.T) {
		dbtx := &stubDBTX{row: fakeRow{scan: func(...any) error { return errs.New("closed pool") }}}

		store := readstore.NewCompraReadStore(dbtx)
		_, err := store.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})
}

func TestFindByUsuario(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rows in store order", func(t *testing.T) {
		newest := sampleRow("30.00", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
		oldest := sampleRow("10.00", time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC))
		dbtx := &stubDBTX{rows: &fakeRows{rows: []compraRow{newest, oldest}}}

		store := readstore.NewCompraReadStore(dbtx)
		views, err := store.FindByUsuario(ctx, "tenant-a", "maria")
		require.NoError(t, err)

		assert.Equal(t, []any{"tenant-a", "maria"}, dbtx.gotArgs)
		require.Len(t, views, 2)
		assert.Equal(t, newest.compraID, views[0].CompraID)
		assert.Equal(t, oldest.compraID, views[1].CompraID)
	})

	t.Run("empty result", func(t *testing.T) {
		dbtx := &stubDBTX{rows: &fakeRows{}}

		store := readstore.NewCompraReadStore(dbtx)
		views, err := store.FindByUsuario(ctx, "tenant-a", "maria")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("query failure", func(t *testing.T) {
		dbtx := &stubDBTX{queryErr: errs.New("connection reset")}

		store := readstore.NewCompraReadStore(dbtx)
		_, err := store.FindByUsuario(ctx, "tenant-a", "maria")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})

	t.Run("deferred rows error", func(t *testing.T) {
		dbtx := &stubDBTX{rows: &fakeRows{err: errs.New("broken stream")}}

		store := readstore.NewCompraReadStore(dbtx)
		_, err := store.FindByUsuario(ctx, "tenant-a", "maria")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFailure))
	})
}
