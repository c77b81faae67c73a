package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as YAML",
	Long:  "Prints the effective configuration after file, environment, and defaults are merged. Useful for checking which spreadsheet and store a deployment is pointed at.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return eris.Wrap(err, "config: marshal")
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
