/*
PURPOSE:
  Guarantees that the data directory and the original data file exist
  before the menu is shown.

REQUIREMENTS:
  User-specified:
  - Create <root>/data and an empty <root>/data/clients.csv when missing.
  - Never touch an existing data file.

  Implementation-discovered:
  - Must be idempotent: a second call on a correct state is a no-op.
  - Directory and file creation are not transactional. A leftover directory
    from a failed run is reused and only the file creation is retried.
  - A directory sitting at the file path is reported as ErrPathConflict.

ARCHITECTURE INTEGRATION:
  - Called by: internal/app, internal/cli (init)
  - Uses: internal/paths, internal/output

ERROR HANDLING:
  - Every failure is a *FilesystemError naming the failed operation and path.
  - Errors propagate to the entry point; nothing is retried here.

IMPLEMENTATION RULES:
  - Directory before file, always.
  - The check-then-create sequence is not atomic. Two processes racing on an
    empty root may both create (and truncate) the file. Accepted for a
    single-user CLI.

USAGE:
  err := bootstrap.EnsureDataFile(layout)

SELF-HEALING INSTRUCTIONS:
  - If permissions change, adjust dirPerm/filePerm.

RELATED FILES:
  - internal/paths/layout.go

MAINTENANCE:
  - None.
*/

package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/daryltucker/client-data/internal/output"
	"github.com/daryltucker/client-data/internal/paths"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// ErrPathConflict means something other than a regular file occupies the data file path.
var ErrPathConflict = errors.New("path is occupied by something other than a regular file")

// FilesystemError reports a failed existence check, directory creation or
// file creation.
type FilesystemError struct {
	Op   string // "stat", "mkdir" or "create"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// EnsureDataFile creates the data directory and an empty original file
// under l unless a regular file already exists at l.OriginalFile().
func EnsureDataFile(l paths.Layout) error {
	file := l.OriginalFile()

	exists, err := isRegularFile(file)
	if err != nil {
		return err
	}
	if exists {
		output.Logger.Debug("Data file present", "path", file)
		return nil
	}

	if err := createDataDir(l.DataDir()); err != nil {
		return err
	}
	return createOriginalFile(file)
}

// isRegularFile reports whether path is a regular file. A missing path is
// (false, nil); anything else occupying the path is ErrPathConflict.
func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &FilesystemError{Op: "stat", Path: path, Err: unwrapPathError(err)}
	}
	if !info.Mode().IsRegular() {
		return false, &FilesystemError{Op: "stat", Path: path, Err: ErrPathConflict}
	}
	return true, nil
}

func createDataDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &FilesystemError{Op: "mkdir", Path: dir, Err: unwrapPathError(err)}
	}
	return nil
}

func createOriginalFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return &FilesystemError{Op: "create", Path: path, Err: unwrapPathError(err)}
	}
	if err := f.Close(); err != nil {
		return &FilesystemError{Op: "create", Path: path, Err: err}
	}
	output.Logger.Info("Created data file", "path", path)
	return nil
}

// unwrapPathError strips *fs.PathError so the path is not printed twice.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
