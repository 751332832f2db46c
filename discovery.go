// FILE: lixenwraith/settings/discovery.go
package settings

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultManifest is the project manifest that marks a project root.
const DefaultManifest = "package.json"

// FindProjectRoot walks up from start (the working directory when empty)
// and returns the first directory containing marker.
func FindProjectRoot(start, marker string) (string, bool) {
	if marker == "" {
		marker = DefaultManifest
	}
	path, ok := findUp(marker, start)
	if !ok {
		return "", false
	}
	return filepath.Dir(path), true
}

// findUp returns the absolute path of name in start or its nearest ancestor.
// An absolute name that exists is returned as is. start may be a file path.
func findUp(name, start string) (string, bool) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return filepath.Clean(name), true
		}
	}

	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		start = cwd
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(current, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// findConfigFile locates name for the application appName: first upward from
// start, then in the XDG config home and config dirs under appName.
func findConfigFile(name, start, appName string) (string, bool) {
	if path, ok := findUp(name, start); ok {
		return path, true
	}
	if appName == "" || filepath.IsAbs(name) {
		return "", false
	}

	path, err := xdg.SearchConfigFile(filepath.Join(appName, name))
	if err != nil {
		return "", false
	}
	return path, true
}
