package paths

import (
	"path/filepath"

	"github.com/daryltucker/client-data/internal/config"
)

// Layout derives the data directory and file paths from an anchor directory.
// Nothing is stored beyond the anchor and the configured names.
type Layout struct {
	Root             string
	DataDirName      string
	OriginalFileName string
	TempFileName     string
}

// NewLayout builds a Layout rooted at root using the names from cfg.
func NewLayout(root string, cfg *config.Config) Layout {
	return Layout{
		Root:             root,
		DataDirName:      cfg.DataDir,
		OriginalFileName: cfg.OriginalFile,
		TempFileName:     cfg.TempFile,
	}
}

// Resolve asks r for the anchor directory and builds a Layout from it.
func Resolve(r Resolver, cfg *config.Config) (Layout, error) {
	root, err := r.ExecutableDir()
	if err != nil {
		return Layout{}, err
	}
	return NewLayout(root, cfg), nil
}

// DataDir returns Root/DataDirName.
func (l Layout) DataDir() string {
	return filepath.Join(l.Root, l.DataDirName)
}

// OriginalFile returns Root/DataDirName/OriginalFileName.
func (l Layout) OriginalFile() string {
	return filepath.Join(l.DataDir(), l.OriginalFileName)
}

// TempFile returns Root/DataDirName/TempFileName.
func (l Layout) TempFile() string {
	return filepath.Join(l.DataDir(), l.TempFileName)
}
