package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/judd-droid/supernovabigboard/internal/fetcher"
)

var (
	reportPreset  string
	reportStart   string
	reportEnd     string
	reportUnit    string
	reportAdvisor string
	reportSales   string
	reportRoster  string
	reportDpr     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute one report and print it as JSON",
	Long:  "Computes a single report pass and writes the JSON tree to stdout. By default the worksheets are pulled live; pass snapshot files to compute from local CSV or XLSX exports instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		preset, rng, err := env.resolveRange(reportPreset, reportStart, reportEnd)
		if err != nil {
			return err
		}

		wb, err := loadSnapshotWorkbook(env)
		if err != nil {
			return err
		}
		if wb == nil {
			wb, err = env.loadWorkbook(ctx)
			if err != nil {
				return err
			}
		}

		report, err := env.computeReport(ctx, wb, preset, rng, reportUnit, reportAdvisor)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return eris.Wrap(err, "report: encode")
		}
		return nil
	},
}

// loadSnapshotWorkbook builds a workbook from local export files. All
// three must be given together or not at all; a mixed live-and-local
// workbook would pair sheets from different points in time.
func loadSnapshotWorkbook(env *appEnv) (*fetcher.Workbook, error) {
	paths := []string{reportSales, reportRoster, reportDpr}
	given := 0
	for _, p := range paths {
		if p != "" {
			given++
		}
	}
	if given == 0 {
		return nil, nil
	}
	if given != len(paths) {
		return nil, eris.New("report: --sales, --roster, and --dpr must be given together")
	}

	var wb fetcher.Workbook
	for i, dst := range []*[][]string{&wb.Sales, &wb.Roster, &wb.Dpr} {
		grid, err := readLocalGrid(paths[i])
		if err != nil {
			return nil, err
		}
		*dst = grid
	}
	return &wb, nil
}

func readLocalGrid(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
	default:
		return fetcher.ReadCSVFile(path, fetcher.CSVOptions{LazyQuotes: true})
	}
}

func init() {
	reportCmd.Flags().StringVar(&reportPreset, "preset", "", "range preset: MTD, QTD, YTD, PREV_MONTH (default MTD)")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "custom range start (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "custom range end (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportUnit, "unit", "", "unit filter (default All)")
	reportCmd.Flags().StringVar(&reportAdvisor, "advisor", "", "advisor drill-down (default All)")
	reportCmd.Flags().StringVar(&reportSales, "sales", "", "local new-business export (csv or xlsx)")
	reportCmd.Flags().StringVar(&reportRoster, "roster", "", "local roster export (csv or xlsx)")
	reportCmd.Flags().StringVar(&reportDpr, "dpr", "", "local DPR export (csv or xlsx)")
	rootCmd.AddCommand(reportCmd)
}
