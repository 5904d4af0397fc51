//go:build !linux && !windows

package paths

import (
	"os"
	"path/filepath"
)

func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}
