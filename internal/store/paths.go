package store

import (
	"os"
	"path/filepath"
	"runtime"

	. "github.com/cricklet/bitchess/internal/helpers"
)

const appName = "bitchess"

// DataDir is the platform data directory, created if missing.
//   - macOS: ~/Library/Application Support/bitchess/
//   - Linux: $XDG_DATA_HOME/bitchess/ or ~/.local/share/bitchess/
//   - Windows: %APPDATA%/bitchess/
func DataDir() (string, Error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := WrapReturn(os.UserHomeDir())
		if !IsNil(err) {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := WrapReturn(os.UserHomeDir())
			if !IsNil(err) {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := WrapReturn(os.UserHomeDir())
			if !IsNil(err) {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", Wrap(err)
	}

	return dataDir, NilError
}

func DatabaseDir() (string, Error) {
	dataDir, err := DataDir()
	if !IsNil(err) {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", Wrap(err)
	}

	return dbDir, NilError
}
