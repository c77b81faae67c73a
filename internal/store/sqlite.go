package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS sheet_cache (
	id         TEXT PRIMARY KEY,
	sheet_key  TEXT NOT NULL,
	grid       TEXT NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
	id           TEXT PRIMARY KEY,
	generated_at TEXT NOT NULL,
	preset       TEXT NOT NULL,
	range_start  TEXT NOT NULL,
	range_end    TEXT NOT NULL,
	unit         TEXT NOT NULL,
	advisor      TEXT NOT NULL,
	body         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sheet_cache_sheet_key ON sheet_cache(sheet_key);
CREATE INDEX IF NOT EXISTS idx_sheet_cache_expires_at ON sheet_cache(expires_at);
CREATE INDEX IF NOT EXISTS idx_reports_generated_at ON reports(generated_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetCachedSheet(ctx context.Context, sheetKey string) (*model.SheetCache, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, sheet_key, grid, fetched_at, expires_at FROM sheet_cache
		 WHERE sheet_key = ? AND expires_at > datetime('now')
		 ORDER BY fetched_at DESC LIMIT 1`,
		sheetKey,
	)

	var sc model.SheetCache
	var gridJSON string
	err := row.Scan(&sc.ID, &sc.SheetKey, &gridJSON, &sc.FetchedAt, &sc.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get cached sheet")
	}
	if err := json.Unmarshal([]byte(gridJSON), &sc.Grid); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal cached grid")
	}
	return &sc, nil
}

func (s *SQLiteStore) SetCachedSheet(ctx context.Context, sheetKey string, grid [][]string, ttl time.Duration) error {
	gridJSON, err := json.Marshal(grid)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal grid")
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sheet_cache (id, sheet_key, grid, fetched_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), sheetKey, string(gridJSON), now, now.Add(ttl),
	)
	return eris.Wrap(err, "sqlite: set cached sheet")
}

func (s *SQLiteStore) DeleteExpiredSheets(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sheet_cache WHERE expires_at <= datetime('now')`,
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: delete expired sheets")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: rows affected")
	}
	return int(n), nil
}

func (s *SQLiteStore) SaveReport(ctx context.Context, report *model.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal report")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, generated_at, preset, range_start, range_end, unit, advisor, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ReportID, report.GeneratedAt, string(report.Filters.Preset),
		report.Filters.Start, report.Filters.End, report.Filters.Unit, report.Filters.Advisor,
		string(body),
	)
	return eris.Wrap(err, "sqlite: save report")
}

func (s *SQLiteStore) GetReport(ctx context.Context, reportID string) (*model.Report, error) {
	row := s.db.QueryRowContext(ctx, `SELECT body FROM reports WHERE id = ?`, reportID)

	var body string
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "sqlite: get report %s", reportID)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal report")
	}
	return &report, nil
}

func (s *SQLiteStore) ListReports(ctx context.Context, limit int) ([]ReportMeta, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, generated_at, preset, range_start, range_end, unit, advisor
		 FROM reports ORDER BY generated_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list reports")
	}
	defer rows.Close() //nolint:errcheck

	var out []ReportMeta
	for rows.Next() {
		var m ReportMeta
		if err := rows.Scan(&m.ReportID, &m.GeneratedAt, &m.Preset, &m.Start, &m.End, &m.Unit, &m.Advisor); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan report meta")
		}
		out = append(out, m)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate reports")
}
