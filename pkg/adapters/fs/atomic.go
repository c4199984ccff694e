package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/quill/pkg/core"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "quill-tmp-"
)

// createFileAtomic writes data to a temp file in the target directory and then
// hard-links it into place. Unlike a rename, the link fails if filename already
// exists, so an existing post is never replaced.
func createFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Link(tmpFile.Name(), filename); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", core.ErrPostExists, filename)
		}
		return fmt.Errorf("failed to link temp file to %s: %w", filename, err)
	}

	return nil
}
