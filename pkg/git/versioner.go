package git

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/quill/pkg/core"
)

// Versioner commits new posts to the repository rooted at the client's work dir.
type Versioner struct {
	Git *Client
}

// NewVersioner creates a core.Versioner backed by the given client.
func NewVersioner(client *Client) *Versioner {
	return &Versioner{Git: client}
}

// CommitPost stages path (relative to the work dir) and commits it with msg.
// The lock serializes index access with other quill processes.
func (v *Versioner) CommitPost(ctx context.Context, path string, msg string) error {
	rel, err := v.relative(path)
	if err != nil {
		return err
	}

	timeout := v.Git.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	unlock, err := v.Git.Lock(lockCtx)
	cancel()
	if err != nil {
		return err
	}
	defer unlock()

	if err := v.Git.Add(ctx, rel); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}
	if err := v.Git.Commit(ctx, msg); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}

	if v.Git.Logger != nil {
		v.Git.Logger.Debug("committed post", "path", rel, "message", msg)
	}
	return nil
}

func (v *Versioner) relative(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return path, nil
	}
	root, err := filepath.Abs(v.Git.WorkDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("post %s is outside %s: %w", path, root, err)
	}
	return filepath.ToSlash(rel), nil
}

var _ core.Versioner = (*Versioner)(nil)
