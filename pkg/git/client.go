package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
)

// LockFile is the name of the lock file created in the work dir.
const LockFile = ".quill.lock"

// ErrNotRepository is returned when the work dir is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

const (
	// DefaultLockTimeout bounds how long CommitPost waits for the lock.
	DefaultLockTimeout = 5 * time.Second

	// DefaultStaleLockAge is the age after which a lock file is considered
	// abandoned by a dead process and removed.
	DefaultStaleLockAge = 30 * time.Second
)

// Client wraps git command execution with a file-based lock for process safety.
type Client struct {
	WorkDir string
	Logger  *slog.Logger

	// LockTimeout bounds the wait in CommitPost. Zero means DefaultLockTimeout.
	LockTimeout time.Duration
	// StaleLockAge is the lock file age treated as abandoned. Zero means DefaultStaleLockAge.
	StaleLockAge time.Duration

	lockPath string
}

// NewClient creates a new git client for the given working directory.
func NewClient(workDir string, logger *slog.Logger) *Client {
	return &Client{
		WorkDir:      workDir,
		Logger:       logger,
		LockTimeout:  DefaultLockTimeout,
		StaleLockAge: DefaultStaleLockAge,
		lockPath:     LockFile,
	}
}

// Lock acquires a file-based lock. It blocks until the lock is acquired or ctx is done.
// A lock file older than StaleLockAge is removed and the acquisition retried.
func (c *Client) Lock(ctx context.Context) (func(), error) {
	fullLockPath := filepath.Join(c.WorkDir, c.lockPath)

	for {
		f, err := os.OpenFile(fullLockPath, os.O_CREATE|os.O_EXCL, 0666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(fullLockPath)
			}, nil
		}

		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		if c.removeStaleLock(fullLockPath) {
			continue
		}

		if err := lifecycle.Sleep(ctx, 10*time.Millisecond); err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", fullLockPath, err)
		}
	}
}

func (c *Client) removeStaleLock(path string) bool {
	age := c.StaleLockAge
	if age <= 0 {
		age = DefaultStaleLockAge
	}

	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) < age {
		return false
	}
	if c.Logger != nil {
		c.Logger.Warn("removing stale lock", "path", path, "age", time.Since(info.ModTime()).Round(time.Second))
	}
	return os.Remove(path) == nil
}

// Run executes a raw git command in the working directory.
// NOTE: It does NOT acquire the lock automatically. The caller must manage safety via Client.Lock().
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("git: no arguments")
	}
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, &CommandError{Args: args, Output: strings.TrimSpace(output), Err: err}
	}

	return strings.TrimSpace(output), nil
}

// Init initializes a new git repository. Re-running it is safe.
func (c *Client) Init(ctx context.Context) error {
	_, err := c.Run(ctx, "init")
	return err
}

// IsRepo reports whether the work dir is inside a git work tree.
func (c *Client) IsRepo(ctx context.Context) bool {
	out, err := c.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Add adds files to the stage.
func (c *Client) Add(ctx context.Context, files ...string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, files...)
	_, err := c.Run(ctx, args...)
	return err
}

// Commit records changes to the repository.
func (c *Client) Commit(ctx context.Context, msg string) error {
	_, err := c.Run(ctx, "commit", "-m", msg)
	return err
}

// Status returns the porcelain status of the repo.
func (c *Client) Status(ctx context.Context) (string, error) {
	return c.Run(ctx, "status", "--porcelain")
}

// CommandError reports a failed git invocation along with git's own output.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s failed: %v", e.Args[0], e.Err)
	}
	return fmt.Sprintf("git %s failed: %v\nOutput: %s", e.Args[0], e.Err, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
