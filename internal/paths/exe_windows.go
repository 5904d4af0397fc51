//go:build windows

package paths

import "os"

// os.Executable wraps GetModuleFileNameW and grows its buffer as needed.
func executablePath() (string, error) {
	return os.Executable()
}
