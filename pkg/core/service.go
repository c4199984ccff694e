package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// MessageFunc builds the commit message for post n.
type MessageFunc func(n int) string

// Result describes the outcome of creating a post.
type Result struct {
	Post    Post
	Path    string
	Message string

	// Committed reports whether the post was recorded in version control.
	Committed bool

	// CommitErr holds the version control failure, if any.
	// The post file is kept on disk regardless.
	CommitErr error
}

// Service handles the workflow of writing a new post.
type Service struct {
	mu        sync.RWMutex
	repo      Repository
	editor    Editor
	versioner Versioner
	logger    *slog.Logger
	now       func() time.Time
	message   MessageFunc
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used to date new posts.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMessage overrides the commit message builder.
func WithMessage(fn MessageFunc) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.message = fn
		}
	}
}

// NewService creates a new Service.
// A nil versioner disables committing.
func NewService(repo Repository, editor Editor, versioner Versioner, opts ...ServiceOption) *Service {
	s := &Service{
		repo:      repo,
		editor:    editor,
		versioner: versioner,
		now:       time.Now,
		message: func(n int) string {
			return fmt.Sprintf("new post %s", FormatNumber(n))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextNumber returns the number the next post will get.
func (s *Service) NextNumber(ctx context.Context) (int, error) {
	n, err := s.repo.NextNumber(ctx)
	if err != nil {
		return 0, err
	}
	if n > MaxNumber {
		return 0, fmt.Errorf("%w: next number %d exceeds %d", ErrSequenceExhausted, n, MaxNumber)
	}
	return n, nil
}

// ListPosts returns the existing posts ordered by number.
func (s *Service) ListPosts(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx)
}

// NewPost allocates the next number and runs Publish with it.
func (s *Service) NewPost(ctx context.Context) (Result, error) {
	n, err := s.NextNumber(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Publish(ctx, n)
}

// Publish captures a body from the editor and stores it as post n.
//
// Editor failures, cancellation and an empty body abort before anything is written.
// A version control failure does not: the post stays on disk and the failure is
// reported through Result.CommitErr.
func (s *Service) Publish(ctx context.Context, n int) (Result, error) {
	if n < 1 || n > MaxNumber {
		return Result{}, fmt.Errorf("%w: invalid post number %d", ErrSequenceExhausted, n)
	}

	body, err := s.editor.Edit(ctx)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, ErrCancelled) {
			return Result{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		return Result{}, err
	}
	if ctx.Err() != nil {
		return Result{}, ErrCancelled
	}

	if body == "" {
		return Result{}, ErrEmptyBody
	}

	post := NewPost(n, body, s.now())
	path, err := s.repo.Create(ctx, post)
	if err != nil {
		return Result{}, fmt.Errorf("failed to save post %d: %w", n, err)
	}
	s.log().Debug("post created", "number", n, "path", path)

	res := Result{
		Post:    post,
		Path:    path,
		Message: s.message(n),
	}

	if s.versioner == nil {
		s.log().Debug("versioning disabled, skipping commit", "path", path)
		return res, nil
	}

	if err := s.versioner.CommitPost(ctx, path, res.Message); err != nil {
		s.log().Warn("commit failed, post left uncommitted", "path", path, "error", err)
		res.CommitErr = err
		return res, nil
	}

	res.Committed = true
	return res, nil
}

func (s *Service) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.DiscardHandler)
