package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/client-data/internal/app"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/paths"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := app.OpenStore(cfg, paths.Select(rootDir))
		if err != nil {
			return err
		}

		clients, errs := store.List()
		for _, err := range errs {
			output.Logger.Warn("Skipping malformed record", "file", store.Path(), "error", err)
		}
		app.PrintClientList(cmd.OutOrStdout(), clients)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
