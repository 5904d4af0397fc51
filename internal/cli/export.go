package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daryltucker/client-data/internal/app"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/paths"
)

var (
	exportFormat string
	exportPath   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all clients to a CSV or JSON Lines file",
	Example: `  # Spreadsheet-friendly CSV next to the data file
  client-data export

  # JSON Lines to a chosen path
  client-data export --format json -o ./clients.jsonl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := app.OpenStore(cfg, paths.Select(rootDir))
		if err != nil {
			return err
		}

		target := exportPath
		if target == "" {
			target = filepath.Join(filepath.Dir(store.Path()), "clients_export."+exportFormat)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create export directory %s: %w", filepath.Dir(target), err)
		}

		w, err := output.NewWriter(exportFormat, target)
		if err != nil {
			return err
		}

		clients, errs := store.List()
		for _, err := range errs {
			output.Logger.Warn("Skipping malformed record", "file", store.Path(), "error", err)
		}
		for _, c := range clients {
			if err := w.Write(c); err != nil {
				w.Close()
				return fmt.Errorf("failed to export client %s: %w", c.AccountNumber, err)
			}
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("failed to close export file %s: %w", target, err)
		}

		output.Logger.Info("Export complete", "path", target, "clients", len(clients))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d client(s) to %s\n", len(clients), target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format: csv or json")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "output file (default is data/clients_export.<format>)")
}
