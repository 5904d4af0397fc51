package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/client-data/internal/app"
	"github.com/daryltucker/client-data/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and an empty data file if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		layout, err := app.Prepare(cfg, paths.Select(rootDir))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), layout.OriginalFile())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
