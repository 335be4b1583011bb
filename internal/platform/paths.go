package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary
// directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveStorePath determines the actual path for the store file based on
// safety rules. If forceTemp is true, the path is re-rooted into a temporary
// directory so development runs never touch the user's real notebooks.
func ResolveStorePath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return DefaultStorePath()
		}
		return userPath
	}

	// If the path is already inside the system temp directory we assume it
	// is intentional (e.g. created by t.TempDir()) and leave it alone.
	cleanUserPath := filepath.Clean(userPath)
	tempRoot := os.TempDir()

	rel, err := filepath.Rel(tempRoot, cleanUserPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return cleanUserPath
	}

	baseTemp := filepath.Join(os.TempDir(), "notekeep-dev")
	var subName string

	if userPath == "" || userPath == "." || userPath == "./" {
		subName = "notebooks.json"
	} else {
		subName = filepath.Base(userPath)
		if subName == "." || subName == string(os.PathSeparator) {
			subName = "notebooks.json"
		}
	}

	return filepath.Join(baseTemp, subName)
}

// DefaultStorePath returns the store location used when no path is given:
// $XDG_DATA_HOME/notekeep/notebooks.json or ~/.local/share/notekeep/notebooks.json.
func DefaultStorePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "notekeep", "notebooks.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "notebooks.json")
	}
	return filepath.Join(home, ".local", "share", "notekeep", "notebooks.json")
}
