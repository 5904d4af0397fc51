/*
PURPOSE:
  Defines the root Cobra command for the client-data CLI.
  Without a subcommand it runs the interactive main menu.

REQUIREMENTS:
  User-specified:
  - Show the main menu and keep asking until a valid option is chosen.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Tests and portable installs need to move the data anchor (--root).

ARCHITECTURE INTEGRATION:
  - Called by: cmd/client-data/main.go
  - Calls: internal/app.Run, child commands (init, list, find, export)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Read from cmd.InOrStdin() and write to cmd.OutOrStdout().

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init() and loadConfig().

RELATED FILES:
  - cmd/client-data/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/client-data/internal/app"
	"github.com/daryltucker/client-data/internal/config"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/paths"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	// rootDir overrides the executable directory as the data anchor
	rootDir string
	// logLevel overrides log_level from the config file
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "client-data",
		Short: "Console manager for client records",
		Long: `Keeps client records in <anchor>/data/clients.csv, where <anchor> is the
directory of the executable unless --root or CLIENT_DATA_ROOT say otherwise.
Run without a subcommand to open the interactive main menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Run(cfg, paths.Select(rootDir), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the config file, applies flag overrides and configures logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := output.Configure(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./client_data.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "anchor directory for data/ (default is the executable directory, or $"+paths.EnvRoot+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
