package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies
// it, which is what the unit tests run against.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}

	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS sheet_cache (
	id         UUID PRIMARY KEY,
	sheet_key  TEXT NOT NULL,
	grid       JSONB NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
	id           TEXT PRIMARY KEY,
	generated_at TEXT NOT NULL,
	preset       TEXT NOT NULL,
	range_start  TEXT NOT NULL,
	range_end    TEXT NOT NULL,
	unit         TEXT NOT NULL,
	advisor      TEXT NOT NULL,
	body         JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sheet_cache_sheet_key ON sheet_cache(sheet_key);
CREATE INDEX IF NOT EXISTS idx_sheet_cache_expires_at ON sheet_cache(expires_at);
CREATE INDEX IF NOT EXISTS idx_reports_generated_at ON reports(generated_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) GetCachedSheet(ctx context.Context, sheetKey string) (*model.SheetCache, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, sheet_key, grid, fetched_at, expires_at FROM sheet_cache
		 WHERE sheet_key = $1 AND expires_at > now()
		 ORDER BY fetched_at DESC LIMIT 1`,
		sheetKey,
	)

	var sc model.SheetCache
	var gridJSON []byte
	err := row.Scan(&sc.ID, &sc.SheetKey, &gridJSON, &sc.FetchedAt, &sc.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get cached sheet")
	}
	if err := json.Unmarshal(gridJSON, &sc.Grid); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal cached grid")
	}
	return &sc, nil
}

func (s *PostgresStore) SetCachedSheet(ctx context.Context, sheetKey string, grid [][]string, ttl time.Duration) error {
	gridJSON, err := json.Marshal(grid)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal grid")
	}

	now := time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO sheet_cache (id, sheet_key, grid, fetched_at, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), sheetKey, gridJSON, now, now.Add(ttl),
	)
	return eris.Wrap(err, "postgres: set cached sheet")
}

func (s *PostgresStore) DeleteExpiredSheets(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sheet_cache WHERE expires_at <= now()`)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: delete expired sheets")
	}
	return int(tag.RowsAffected()), nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, report *model.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal report")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO reports (id, generated_at, preset, range_start, range_end, unit, advisor, body)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		report.ReportID, report.GeneratedAt, string(report.Filters.Preset),
		report.Filters.Start, report.Filters.End, report.Filters.Unit, report.Filters.Advisor,
		body,
	)
	return eris.Wrap(err, "postgres: save report")
}

func (s *PostgresStore) GetReport(ctx context.Context, reportID string) (*model.Report, error) {
	row := s.pool.QueryRow(ctx, `SELECT body FROM reports WHERE id = $1`, reportID)

	var body []byte
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "postgres: get report %s", reportID)
	}

	var report model.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal report")
	}
	return &report, nil
}

func (s *PostgresStore) ListReports(ctx context.Context, limit int) ([]ReportMeta, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, generated_at, preset, range_start, range_end, unit, advisor
		 FROM reports ORDER BY generated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list reports")
	}
	defer rows.Close()

	var out []ReportMeta
	for rows.Next() {
		var m ReportMeta
		if err := rows.Scan(&m.ReportID, &m.GeneratedAt, &m.Preset, &m.Start, &m.End, &m.Unit, &m.Advisor); err != nil {
			return nil, eris.Wrap(err, "postgres: scan report meta")
		}
		out = append(out, m)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate reports")
}
