/*
PURPOSE:
  High-level runner that orchestrates one interactive session.
  Resolve anchor -> Bootstrap -> Menu loop.

REQUIREMENTS:
  User-specified:
  - The data file must exist before the menu is shown.
  - Keep asking until a valid menu option is entered.

  Implementation-discovered:
  - Commands other than the menu need the same resolve + bootstrap step.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/paths, internal/bootstrap, internal/records, internal/menu

ERROR HANDLING:
  - Path and filesystem errors are returned unchanged to the caller.
  - Invalid menu input never becomes an error.

IMPLEMENTATION RULES:
  - No retries: a permission or disk problem needs the operator.

USAGE:
  err := app.Run(cfg, paths.Select(root), os.Stdin, os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/app/session.go

MAINTENANCE:
  - Update when new startup steps are added.
*/

package app

import (
	"io"

	"github.com/daryltucker/client-data/internal/bootstrap"
	"github.com/daryltucker/client-data/internal/config"
	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/paths"
	"github.com/daryltucker/client-data/internal/records"
)

// Prepare resolves the data layout and makes sure the data file exists.
func Prepare(cfg *config.Config, r paths.Resolver) (paths.Layout, error) {
	layout, err := paths.Resolve(r, cfg)
	if err != nil {
		return paths.Layout{}, err
	}
	output.Logger.Debug("Resolved data layout", "root", layout.Root, "file", layout.OriginalFile())

	if err := bootstrap.EnsureDataFile(layout); err != nil {
		return paths.Layout{}, err
	}
	return layout, nil
}

// OpenStore prepares the layout and returns a Store over it.
func OpenStore(cfg *config.Config, r paths.Resolver) (*records.Store, error) {
	layout, err := Prepare(cfg, r)
	if err != nil {
		return nil, err
	}
	return records.NewStore(layout, cfg.Separator), nil
}

// Run executes a full interactive session reading from in and writing to out.
func Run(cfg *config.Config, r paths.Resolver, in io.Reader, out io.Writer) error {
	store, err := OpenStore(cfg, r)
	if err != nil {
		return err
	}
	return NewSession(store, in, out).Run()
}
