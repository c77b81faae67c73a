package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresGetCachedSheetMiss(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, sheet_key, grid, fetched_at, expires_at FROM sheet_cache`).
		WithArgs("absent").
		WillReturnError(pgx.ErrNoRows)

	got, err := s.GetCachedSheet(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetCachedSheetHit(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, sheet_key, grid, fetched_at, expires_at FROM sheet_cache`).
		WithArgs("sheet123:gid0").
		WillReturnRows(pgxmock.NewRows([]string{"id", "sheet_key", "grid", "fetched_at", "expires_at"}).
			AddRow("abc", "sheet123:gid0", []byte(`[["Advisor","FYC"],["Ana Cruz","1000"]]`), now, now.Add(time.Hour)))

	got, err := s.GetCachedSheet(context.Background(), "sheet123:gid0")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, [][]string{{"Advisor", "FYC"}, {"Ana Cruz", "1000"}}, got.Grid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSetCachedSheet(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO sheet_cache`).
		WithArgs(pgxmock.AnyArg(), "sheet123:gid0", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.SetCachedSheet(context.Background(), "sheet123:gid0", [][]string{{"x"}}, time.Hour)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteExpiredSheets(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM sheet_cache WHERE expires_at <= now\(\)`).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := s.DeleteExpiredSheets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveAndGetReport(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	report := &model.Report{
		ReportID:    "r1",
		GeneratedAt: "2026-02-01T08:00:00Z",
		Filters: model.Filters{
			Preset: model.PresetMTD, Start: "2026-01-01", End: "2026-01-31",
			Unit: "All", Advisor: "All",
		},
	}

	mock.ExpectExec(`INSERT INTO reports`).
		WithArgs("r1", "2026-02-01T08:00:00Z", "MTD", "2026-01-01", "2026-01-31", "All", "All", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.SaveReport(context.Background(), report))

	mock.ExpectQuery(`SELECT body FROM reports WHERE id = \$1`).
		WithArgs("r1").
		WillReturnRows(pgxmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"reportId":"r1","generatedAt":"2026-02-01T08:00:00Z"}`)))

	got, err := s.GetReport(context.Background(), "r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ReportID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListReports(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, generated_at, preset, range_start, range_end, unit, advisor`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "generated_at", "preset", "range_start", "range_end", "unit", "advisor"}).
			AddRow("r2", "2026-02-02T08:00:00Z", "MTD", "2026-02-01", "2026-02-02", "All", "All").
			AddRow("r1", "2026-02-01T08:00:00Z", "MTD", "2026-01-01", "2026-01-31", "All", "All"))

	metas, err := s.ListReports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "r2", metas[0].ReportID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
