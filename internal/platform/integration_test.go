package platform

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quill/pkg/core"
	"github.com/aretw0/quill/pkg/git"
)

var testNow = func() time.Time { return time.Date(2026, 10, 19, 14, 3, 9, 0, time.UTC) }

// setupBlog creates a blog root with a content directory holding the given posts.
func setupBlog(t *testing.T, existing ...string) string {
	t.Helper()
	root := t.TempDir()
	content := filepath.Join(root, "content")
	require.NoError(t, os.Mkdir(content, 0755))
	for _, name := range existing {
		require.NoError(t, os.WriteFile(filepath.Join(content, name), []byte("---\nslug: 1\n---\n\nold"), 0644))
	}
	return root
}

func writeEditor(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake editors are shell scripts")
	}
	path := filepath.Join(t.TempDir(), "editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func initRepo(t *testing.T, root string) *git.Client {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	ctx := context.Background()
	client := git.NewClient(root, nil)
	require.NoError(t, client.Init(ctx))
	for _, kv := range [][2]string{{"user.email", "writer@example.com"}, {"user.name", "Writer"}, {"commit.gpgsign", "false"}} {
		_, err := client.Run(ctx, "config", kv[0], kv[1])
		require.NoError(t, err)
	}
	return client
}

func TestIntegration_NewPostCommitted(t *testing.T) {
	root := setupBlog(t, "000001.md", "000006.md")
	client := initRepo(t, root)

	cfg, err := LoadConfig(root, map[string]any{"editor": writeEditor(t, `printf 'hello' > "$1"`)})
	require.NoError(t, err)

	svc, err := New(cfg, WithClock(testNow))
	require.NoError(t, err)

	n, err := svc.NextNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, n)

	res, err := svc.Publish(context.Background(), n)
	require.NoError(t, err)
	require.NoError(t, res.CommitErr)
	assert.True(t, res.Committed)
	assert.Equal(t, filepath.Join(root, "content", "000007.md"), res.Path)
	assert.Equal(t, "feat(000007): write new post #7", res.Message)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "---\nslug: 7\ntitle: #7\ndate: 2026-10-19 14:03:09Z\n---\n\nhello", string(data))

	subject, err := client.Run(context.Background(), "log", "-1", "--format=%s")
	require.NoError(t, err)
	assert.Equal(t, "feat(000007): write new post #7", subject)
}

func TestIntegration_CommitFailureKeepsPost(t *testing.T) {
	root := setupBlog(t, "000002.md")
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(root))

	cfg, err := LoadConfig(root, map[string]any{"editor": writeEditor(t, `printf 'hello' > "$1"`)})
	require.NoError(t, err)

	svc, err := New(cfg, WithClock(testNow))
	require.NoError(t, err)

	res, err := svc.NewPost(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Committed)
	require.Error(t, res.CommitErr)

	data, err := os.ReadFile(filepath.Join(root, "content", "000003.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n\nhello"))
}

func TestIntegration_EmptyBodyWritesNothing(t *testing.T) {
	root := setupBlog(t, "000004.md")

	cfg, err := LoadConfig(root, map[string]any{
		"editor":      writeEditor(t, `exit 0`),
		"git.enabled": false,
	})
	require.NoError(t, err)

	svc, err := New(cfg)
	require.NoError(t, err)

	_, err = svc.NewPost(context.Background())
	require.ErrorIs(t, err, core.ErrEmptyBody)

	_, err = os.Stat(filepath.Join(root, "content", "000005.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestIntegration_EditorFailureWritesNothing(t *testing.T) {
	root := setupBlog(t, "000004.md")

	cfg, err := LoadConfig(root, map[string]any{
		"editor":      writeEditor(t, `printf 'partial' > "$1"; exit 2`),
		"git.enabled": false,
	})
	require.NoError(t, err)

	svc, err := New(cfg)
	require.NoError(t, err)

	_, err = svc.NewPost(context.Background())
	require.ErrorIs(t, err, core.ErrEditorFailed)

	entries, err := os.ReadDir(filepath.Join(root, "content"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNew_RequiresRoot(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
