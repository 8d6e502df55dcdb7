package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ResolvePath turns a configured storage path into an absolute file path.
// "~" is expanded to the home directory, absolute paths are kept, and
// anything else is placed under the per-user data directory
// ($XDG_DATA_HOME or the platform equivalent). Parent directories are created.
func ResolvePath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("storage: empty path")
	}

	if p[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		p = filepath.Join(home, p[1:])
	}

	if !filepath.IsAbs(p) {
		resolved, err := xdg.DataFile(p)
		if err != nil {
			return "", fmt.Errorf("storage: cannot resolve data file %s: %w", p, err)
		}
		return resolved, nil
	}

	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return p, nil
}
