package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the base name of the optional blog configuration file.
const ConfigFileName = "quill.yaml"

// FindRoot recursively looks upwards for a blog root indicator.
// Indicators are: a quill.yaml file or a .git directory.
// If found, returns the absolute path to the root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) || hasFile(dir, ".git") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("blog root not found above %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
