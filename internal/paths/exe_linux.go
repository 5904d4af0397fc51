//go:build linux

package paths

import "os"

func executablePath() (string, error) {
	return os.Readlink("/proc/self/exe")
}
