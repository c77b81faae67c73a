package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/judd-droid/supernovabigboard/internal/store"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect saved report history",
}

// -- reports list --

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")

		metas, err := st.ListReports(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "reports list")
		}

		if len(metas) == 0 {
			fmt.Fprintln(os.Stderr, "No reports found.")
			return nil
		}

		formatReportsList(os.Stdout, metas)
		return nil
	},
}

// -- reports show --

var reportsShowCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Print one saved report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		report, err := st.GetReport(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "reports show")
		}
		if report == nil {
			return eris.Errorf("report %s not found", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func formatReportsList(w io.Writer, metas []store.ReportMeta) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REPORT ID\tGENERATED\tPRESET\tRANGE\tUNIT\tADVISOR")
	for _, m := range metas {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s..%s\t%s\t%s\n",
			m.ReportID, m.GeneratedAt, m.Preset, m.Start, m.End, m.Unit, m.Advisor)
	}
	tw.Flush() //nolint:errcheck
}

func init() {
	reportsListCmd.Flags().Int("limit", 20, "maximum rows to list")
	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsShowCmd)
	rootCmd.AddCommand(reportsCmd)
}
