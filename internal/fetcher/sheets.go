package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SheetsClient pulls worksheet grids from a Google spreadsheet through
// the anonymous CSV export endpoint. The spreadsheet must be link-shared;
// no OAuth flow is involved.
type SheetsClient struct {
	fetcher       Fetcher
	spreadsheetID string
}

// NewSheetsClient creates a client bound to one spreadsheet.
func NewSheetsClient(f Fetcher, spreadsheetID string) *SheetsClient {
	return &SheetsClient{fetcher: f, spreadsheetID: spreadsheetID}
}

// ExportURL builds the CSV export URL for one worksheet gid.
func (c *SheetsClient) ExportURL(gid string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", c.spreadsheetID, gid)
}

// FetchGrid downloads one worksheet and parses it into a cell grid.
func (c *SheetsClient) FetchGrid(ctx context.Context, gid string) ([][]string, error) {
	start := time.Now()
	body, err := c.fetcher.Download(ctx, c.ExportURL(gid))
	if err != nil {
		return nil, eris.Wrapf(err, "sheets: fetch gid %s", gid)
	}
	defer body.Close() //nolint:errcheck

	grid, err := ReadCSVGrid(body, CSVOptions{LazyQuotes: true})
	if err != nil {
		return nil, eris.Wrapf(err, "sheets: parse gid %s", gid)
	}

	zap.L().Debug("fetched worksheet",
		zap.String("spreadsheet", c.spreadsheetID),
		zap.String("gid", gid),
		zap.Int("rows", len(grid)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return grid, nil
}

// Workbook holds the three grids one report computation needs.
type Workbook struct {
	Sales  [][]string
	Roster [][]string
	Dpr    [][]string
}

// FetchWorkbook downloads the sales, roster, and DPR worksheets
// concurrently. Any single failure fails the whole fetch; a report built
// from a partial workbook would silently misreport.
func (c *SheetsClient) FetchWorkbook(ctx context.Context, salesGID, rosterGID, dprGID string) (*Workbook, error) {
	var wb Workbook

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		grid, err := c.FetchGrid(ctx, salesGID)
		wb.Sales = grid
		return err
	})
	g.Go(func() error {
		grid, err := c.FetchGrid(ctx, rosterGID)
		wb.Roster = grid
		return err
	})
	g.Go(func() error {
		grid, err := c.FetchGrid(ctx, dprGID)
		wb.Dpr = grid
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "sheets: fetch workbook")
	}
	return &wb, nil
}
