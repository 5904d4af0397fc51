// Package paths resolves the anchor directory and the data file locations
// derived from it.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvRoot overrides the executable directory as the anchor for data paths.
const EnvRoot = "CLIENT_DATA_ROOT"

// Resolver reports the directory that anchors all relative data paths.
type Resolver interface {
	ExecutableDir() (string, error)
}

// ResolutionError reports that the anchor directory could not be determined.
type ResolutionError struct {
	Err error
}

func (e *ResolutionError) Error() string {
	if e == nil || e.Err == nil {
		return "cannot resolve executable directory"
	}
	return fmt.Sprintf("cannot resolve executable directory: %v", e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ExecutableResolver resolves the directory containing the running binary.
type ExecutableResolver struct{}

// ExecutableDir returns the absolute directory of the running program.
func (ExecutableResolver) ExecutableDir() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	if exe == "" {
		return "", &ResolutionError{Err: errors.New("operating system reported an empty path")}
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	return filepath.Dir(abs), nil
}

// StaticResolver returns a fixed directory. Used for --root and CLIENT_DATA_ROOT.
type StaticResolver string

// ExecutableDir returns the directory made absolute.
func (s StaticResolver) ExecutableDir() (string, error) {
	if s == "" {
		return "", &ResolutionError{Err: errors.New("empty root directory")}
	}
	abs, err := filepath.Abs(string(s))
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	return abs, nil
}

// Select picks a resolver following the chain: flag > CLIENT_DATA_ROOT env >
// executable directory.
func Select(flag string) Resolver {
	if flag != "" {
		return StaticResolver(flag)
	}
	if env := os.Getenv(EnvRoot); env != "" {
		return StaticResolver(env)
	}
	return ExecutableResolver{}
}
