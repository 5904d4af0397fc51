package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/client-data/internal/app"
	"github.com/daryltucker/client-data/internal/paths"
	"github.com/daryltucker/client-data/internal/records"
)

var byName bool

var findCmd = &cobra.Command{
	Use:   "find <account-number>",
	Short: "Print one client by account number, or clients by name with --name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := app.OpenStore(cfg, paths.Select(rootDir))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if byName {
			matches := store.FindByName(args[0])
			if len(matches) == 0 {
				fmt.Fprintf(out, "No client name contains %q.\n", args[0])
				return nil
			}
			app.PrintClientList(out, matches)
			return nil
		}

		c, err := store.Find(args[0])
		if errors.Is(err, records.ErrNotFound) {
			app.PrintNotFound(out, store, args[0])
			return nil
		}
		if err != nil {
			return err
		}
		app.PrintCard(out, c)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().BoolVar(&byName, "name", false, "match the argument against client names (case-insensitive substring)")
}
