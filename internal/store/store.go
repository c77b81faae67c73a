// Package store persists the two things the reporting engine keeps
// between requests: cached worksheet grids (so a burst of dashboard
// loads does not hammer the sheet export endpoint) and a history of
// generated reports. Both a SQLite and a Postgres backend implement the
// same interface.
package store

import (
	"context"
	"time"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// ReportMeta is one row of the report history listing.
type ReportMeta struct {
	ReportID    string `json:"reportId"`
	GeneratedAt string `json:"generatedAt"`
	Preset      string `json:"preset"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Unit        string `json:"unit"`
	Advisor     string `json:"advisor"`
}

// Store defines the persistence interface for the reporting service.
type Store interface {
	// Sheet cache
	GetCachedSheet(ctx context.Context, sheetKey string) (*model.SheetCache, error)
	SetCachedSheet(ctx context.Context, sheetKey string, grid [][]string, ttl time.Duration) error
	DeleteExpiredSheets(ctx context.Context) (int, error)

	// Report history
	SaveReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, reportID string) (*model.Report, error)
	ListReports(ctx context.Context, limit int) ([]ReportMeta, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
