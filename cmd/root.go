package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/judd-droid/supernovabigboard/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bigboard",
	Short: "Sales performance reporting for the Supernova agency",
	Long:  "Pulls new-business, roster, and DPR sheets from Google Sheets, computes the big-board metrics, and serves or prints the report.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
