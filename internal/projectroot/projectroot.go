// Package projectroot locates the workspace root that anchors promptpath's
// configuration directory.
package projectroot

import (
	"os"
	"path/filepath"
)

// Marker is the directory whose presence identifies a workspace root.
const Marker = ".promptpath"

// Find walks upward from start looking for a directory containing Marker.
// When no marker exists anywhere above start, the absolute form of start is
// returned so that config loading degrades to defaults instead of failing.
func Find(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		info, err := os.Stat(filepath.Join(dir, Marker))
		if err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
