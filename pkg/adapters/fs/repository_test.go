package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quill/pkg/core"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("---\n---\n"), 0644))
	}
}

func TestRepository_NextNumber(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		files []string
		want  int
	}{
		{"empty directory", nil, 1},
		{"single post", []string{"000001.md"}, 2},
		{"gaps", []string{"000001.md", "000005.md", "000003.md"}, 6},
		{"large numbers", []string{"000999.md", "001000.md"}, 1001},
		{
			"non matching names ignored",
			[]string{"000002.md", "7.md", "0000099.md", "abcdef.md", "000050.txt", "000060.md.bak"},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.files...)

			repo := NewRepository(Config{Path: dir})
			got, err := repo.NextNumber(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_NextNumberIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "000004.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "000900.md"), 0755))

	got, err := NewRepository(Config{Path: dir}).NextNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestRepository_MissingDirectory(t *testing.T) {
	repo := NewRepository(Config{Path: filepath.Join(t.TempDir(), "content")})

	_, err := repo.NextNumber(context.Background())
	assert.ErrorIs(t, err, core.ErrContentDirMissing)

	_, err = repo.Create(context.Background(), core.Post{Number: 1})
	assert.ErrorIs(t, err, core.ErrContentDirMissing)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewRepository(Config{Path: dir})

	p := core.NewPost(7, "hello", time.Date(2026, 10, 19, 14, 3, 9, 0, time.UTC))
	path, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "000007.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\nslug: 7\ntitle: #7\ndate: 2026-10-19 14:03:09Z\n---\n\nhello", string(data))

	_, err = repo.Create(ctx, core.NewPost(7, "again", time.Now()))
	assert.ErrorIs(t, err, core.ErrPostExists)

	data2, _ := os.ReadFile(path)
	assert.Equal(t, data, data2)

	next, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, next)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewRepository(Config{Path: dir})

	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, n := range []int{3, 1, 2} {
		_, err := repo.Create(ctx, core.NewPost(n, "body", at.Add(time.Duration(n)*time.Hour)))
		require.NoError(t, err)
	}
	touch(t, dir, "notes.md")

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i, p := range posts {
		assert.Equal(t, i+1, p.Number)
		assert.Equal(t, core.DefaultTitle(i+1), p.Title)
		assert.Equal(t, "body", p.Body)
	}

	state := repo.State().(RepositoryState)
	assert.Equal(t, 3, state.PostCount)
	assert.Equal(t, dir, state.Path)
}

func TestRepository_ListHandWrittenMetadata(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewRepository(Config{Path: dir})

	_, err := repo.Create(ctx, core.NewPost(1, "first", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	manual := "---\nslug: 2\ntitle: Second\nsummary: a summary that\n    wraps onto a second line\ndate: 2026-03-02 00:00:00Z\n---\n\nsecond"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000002.md"), []byte(manual), 0644))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Second", posts[1].Title)
	assert.Equal(t, "second", posts[1].Body)
}
