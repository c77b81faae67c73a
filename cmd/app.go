package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/judd-droid/supernovabigboard/internal/config"
	"github.com/judd-droid/supernovabigboard/internal/fetcher"
	"github.com/judd-droid/supernovabigboard/internal/metrics"
	"github.com/judd-droid/supernovabigboard/internal/model"
	"github.com/judd-droid/supernovabigboard/internal/sheet"
	"github.com/judd-droid/supernovabigboard/internal/store"
	"github.com/judd-droid/supernovabigboard/internal/summary"
)

// appEnv bundles the dependencies the report commands share.
type appEnv struct {
	cfg    *config.Config
	store  store.Store
	sheets *fetcher.SheetsClient
	loc    *time.Location
}

func initApp(ctx context.Context) (*appEnv, error) {
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, eris.Wrapf(err, "app: load timezone %q", cfg.Report.Timezone)
	}

	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}

	httpf := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout:    time.Duration(cfg.Sheets.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Sheets.MaxRetries,
	})

	return &appEnv{
		cfg:    cfg,
		store:  st,
		sheets: fetcher.NewSheetsClient(httpf, cfg.Sheets.SpreadsheetID),
		loc:    loc,
	}, nil
}

func openStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	case "sqlite", "":
		return store.NewSQLite(cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("app: unknown store driver %q", cfg.Store.Driver)
	}
}

func (e *appEnv) Close() {
	if err := e.store.Close(); err != nil {
		zap.L().Warn("store close failed", zap.Error(err))
	}
}

// resolveRange turns raw request parameters into a concrete reporting
// window. Explicit start and end win over the preset; an empty preset
// defaults to month-to-date. "Now" is taken in the agency timezone so
// the window boundaries land on the right calendar day.
func (e *appEnv) resolveRange(preset, start, end string) (model.RangePreset, metrics.Range, error) {
	if start != "" || end != "" {
		r, err := metrics.CustomRange(start, end)
		if err != nil {
			return "", metrics.Range{}, err
		}
		return model.PresetCustom, r, nil
	}

	p := model.RangePreset(strings.ToUpper(strings.TrimSpace(preset)))
	if p == "" {
		p = model.PresetMTD
	}
	return p, metrics.PresetRange(p, time.Now().In(e.loc)), nil
}

// fetchGridCached returns one worksheet grid, serving from the store
// cache when a fresh copy exists. Cache failures degrade to a live
// fetch; stale data is worse than a slow request, a missing cache is
// not.
func (e *appEnv) fetchGridCached(ctx context.Context, gid string) ([][]string, error) {
	key := e.cfg.Sheets.SpreadsheetID + ":" + gid

	cached, err := e.store.GetCachedSheet(ctx, key)
	if err != nil {
		zap.L().Warn("sheet cache read failed", zap.String("key", key), zap.Error(err))
	}
	if cached != nil {
		return cached.Grid, nil
	}

	grid, err := e.sheets.FetchGrid(ctx, gid)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(e.cfg.Cache.TTLSecs) * time.Second
	if err := e.store.SetCachedSheet(ctx, key, grid, ttl); err != nil {
		zap.L().Warn("sheet cache write failed", zap.String("key", key), zap.Error(err))
	}
	return grid, nil
}

// loadWorkbook pulls the three worksheets, cache-aware when caching is
// enabled.
func (e *appEnv) loadWorkbook(ctx context.Context) (*fetcher.Workbook, error) {
	s := e.cfg.Sheets
	if !e.cfg.Cache.Enabled {
		return e.sheets.FetchWorkbook(ctx, s.SalesGID, s.RosterGID, s.DprGID)
	}

	var wb fetcher.Workbook
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		grid, err := e.fetchGridCached(ctx, s.SalesGID)
		wb.Sales = grid
		return err
	})
	g.Go(func() error {
		grid, err := e.fetchGridCached(ctx, s.RosterGID)
		wb.Roster = grid
		return err
	})
	g.Go(func() error {
		grid, err := e.fetchGridCached(ctx, s.DprGID)
		wb.Dpr = grid
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &wb, nil
}

// computeReport runs one full report pass over a workbook and persists
// the result for the history endpoints.
func (e *appEnv) computeReport(ctx context.Context, wb *fetcher.Workbook, preset model.RangePreset, rng metrics.Range, unit, advisor string) (*model.Report, error) {
	if unit == "" {
		unit = metrics.FilterAll
	}
	if advisor == "" {
		advisor = metrics.FilterAll
	}

	rows := sheet.ParseSalesRows(wb.Sales)
	roster := sheet.ParseRosterEntries(wb.Roster)
	dpr := sheet.ParseDprRows(wb.Dpr)

	start := time.Now()
	report := metrics.BuildReport(rows, roster, dpr, metrics.Params{
		Preset:            preset,
		Range:             rng,
		Unit:              unit,
		Advisor:           advisor,
		ReportID:          uuid.NewString(),
		GeneratedAt:       time.Now(),
		MdrtTargetPremium: e.cfg.Report.MdrtTargetPremium,
	})
	report.Summaries = summary.Build(report)

	zap.L().Info("report computed",
		zap.String("report_id", report.ReportID),
		zap.String("preset", string(preset)),
		zap.Int("transactions", len(rows)),
		zap.Int("roster", len(roster)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := e.store.SaveReport(ctx, report); err != nil {
		zap.L().Warn("report save failed", zap.String("report_id", report.ReportID), zap.Error(err))
	}
	return report, nil
}
