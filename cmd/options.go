package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/judd-droid/supernovabigboard/internal/metrics"
	"github.com/judd-droid/supernovabigboard/internal/sheet"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the filterable units and advisors",
	Long:  "Prints the unit and advisor filter values the dashboard dropdowns would offer, derived from the current roster and new-business sheets.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		wb, err := env.loadWorkbook(ctx)
		if err != nil {
			return err
		}

		opts := metrics.BuildOptions(sheet.ParseSalesRows(wb.Sales), sheet.ParseRosterEntries(wb.Roster))

		fmt.Fprintln(os.Stdout, "Units:")
		for _, u := range opts.Units {
			fmt.Fprintf(os.Stdout, "  %s\n", u)
		}
		fmt.Fprintln(os.Stdout, "Advisors:")
		for _, a := range opts.Advisors {
			fmt.Fprintf(os.Stdout, "  %s\n", a)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
