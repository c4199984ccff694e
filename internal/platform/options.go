package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/quill/pkg/core"
)

// options holds the internal wiring overrides for the quill service.
type options struct {
	logger     *slog.Logger
	repository core.Repository
	editor     core.Editor
	versioner  core.Versioner
	now        func() time.Time
}

// Option defines a functional option for configuring quill.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom post store (e.g. mock).
// If provided, the filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithEditor replaces the external editor process.
func WithEditor(e core.Editor) Option {
	return func(o *options) {
		o.editor = e
	}
}

// WithVersioner replaces the git versioner. It only applies when git is enabled.
func WithVersioner(v core.Versioner) Option {
	return func(o *options) {
		o.versioner = v
	}
}

// WithClock overrides the time source used to date posts.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
