package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".quarry"

// DefaultStoragePath returns the default storage location for Quarry:
// ~/.quarry on macOS and Linux, %USERPROFILE%\.quarry on Windows.
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
