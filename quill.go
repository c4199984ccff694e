package quill

import (
	"log/slog"
	"time"

	"github.com/aretw0/quill/internal/platform"
	"github.com/aretw0/quill/pkg/core"
)

// --- Configuration ---

// Config is the blog configuration (content directory, editor, git settings).
type Config = platform.Config

// Option defines a functional option for wiring quill.
type Option = platform.Option

// LoadConfig reads <root>/quill.yaml, QUILL_* environment variables and the given overrides.
func LoadConfig(root string, overrides map[string]any) (Config, error) {
	return platform.LoadConfig(root, overrides)
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom post store.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithEditor replaces the external editor.
func WithEditor(e core.Editor) Option {
	return platform.WithEditor(e)
}

// WithVersioner replaces the git versioner.
func WithVersioner(v core.Versioner) Option {
	return platform.WithVersioner(v)
}

// WithClock overrides the time source used to date posts.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// --- Factory ---

// New creates a new quill Service.
func New(cfg Config, opts ...Option) (*core.Service, error) {
	return platform.New(cfg, opts...)
}

// FindRoot recursively looks upwards for a blog root (quill.yaml or .git).
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
