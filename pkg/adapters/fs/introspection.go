package fs

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path      string `json:"path"`
	Pattern   string `json:"pattern"`
	PostCount int    `json:"post_count"`
	FileMode  string `json:"file_mode"`
}

// State implements introspection.Introspectable.
// PostCount reflects the most recent scan of the content directory.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:      r.path,
		Pattern:   PostPattern,
		PostCount: r.lastScan,
		FileMode:  r.config.FileMode.String(),
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
