// Package editor captures post bodies by running an external text editor on a scratch file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quill/pkg/core"
)

// DefaultCommand is used when neither the configuration nor the environment names an editor.
const DefaultCommand = "nvim"

// ScratchPattern is the name pattern of scratch files.
const ScratchPattern = "quill-*.md"

// Config holds the configuration for the external editor.
type Config struct {
	// Command is the editor command line. It may carry arguments, e.g. "code --wait".
	Command string
	// TempDir is where scratch files are created. Empty means os.TempDir().
	TempDir string
	Logger  *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Process implements core.Editor by spawning an editor and waiting for it to exit.
type Process struct {
	config Config
}

// New creates an editor process runner. Unset streams default to the process's own.
func New(config Config) *Process {
	if config.Command == "" {
		config.Command = Resolve("")
	}
	if config.Stdin == nil {
		config.Stdin = os.Stdin
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	return &Process{config: config}
}

// Resolve picks the editor command: configured, then $VISUAL, then $EDITOR, then DefaultCommand.
func Resolve(configured string) string {
	for _, c := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return DefaultCommand
}

// Command returns the editor command line in use.
func (p *Process) Command() string {
	return p.config.Command
}

// Edit opens a fresh scratch file in the editor, blocks until the editor exits,
// and returns what was saved. The scratch file is removed afterwards.
func (p *Process) Edit(ctx context.Context) (string, error) {
	fields := strings.Fields(p.config.Command)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty editor command", core.ErrEditorFailed)
	}

	scratch, err := os.CreateTemp(p.config.TempDir, ScratchPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	path := scratch.Name()
	scratch.Close()
	defer os.Remove(path)

	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = p.config.Stdin
	cmd.Stdout = p.config.Stdout
	cmd.Stderr = p.config.Stderr
	cmd.WaitDelay = time.Second

	if p.config.Logger != nil {
		p.config.Logger.Debug("launching editor", "command", fields[0], "args", args)
	}

	if err := p.wait(ctx, cmd); err != nil {
		if ctx.Err() != nil {
			return "", core.ErrCancelled
		}
		return "", fmt.Errorf("%w: %s: %w", core.ErrEditorFailed, fields[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}
	return string(data), nil
}

// wait runs cmd in a tracked goroutine and returns when it exits or ctx is done.
// CommandContext kills the editor on cancellation, so the goroutine does not leak.
func (p *Process) wait(ctx context.Context, cmd *exec.Cmd) error {
	done := make(chan error, 2)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		done <- cmd.Run()
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		done <- fmt.Errorf("editor panic: %w", err)
	}))

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsNotFound reports whether err came from an editor binary missing on PATH.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

var _ core.Editor = (*Process)(nil)
