package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/quill/pkg/core"
)

// PostPattern is the glob matching post files in the content directory.
const PostPattern = "[0-9][0-9][0-9][0-9][0-9][0-9].md"

var postName = regexp.MustCompile(`^(\d{6})\.md$`)

// Config holds the configuration for the filesystem repository.
type Config struct {
	// Path is the content directory holding the post files.
	Path       string
	Logger     *slog.Logger
	Serializer Serializer
	// FileMode is the permission of new post files. Defaults to 0644.
	FileMode os.FileMode
}

// Repository implements core.Repository on a flat directory of NNNNNN.md files.
type Repository struct {
	mu         sync.RWMutex
	path       string
	config     Config
	serializer Serializer
	lastScan   int
}

// NewRepository creates a new filesystem repository.
func NewRepository(config Config) *Repository {
	if config.Serializer == nil {
		config.Serializer = NewMarkdownSerializer()
	}
	if config.FileMode == 0 {
		config.FileMode = 0644
	}
	return &Repository{
		path:       config.Path,
		config:     config,
		serializer: config.Serializer,
	}
}

// Path returns the content directory.
func (r *Repository) Path() string {
	return r.path
}

// NextNumber returns one greater than the highest post number on disk.
// An empty content directory yields 1.
func (r *Repository) NextNumber(ctx context.Context) (int, error) {
	numbers, err := r.scan(ctx)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, n := range numbers {
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

// Create writes a new post file. It fails with core.ErrPostExists rather than
// overwrite a post already on disk.
func (r *Repository) Create(ctx context.Context, p core.Post) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.checkDir(); err != nil {
		return "", err
	}

	data, err := r.serializer.Serialize(p)
	if err != nil {
		return "", fmt.Errorf("failed to serialize post: %w", err)
	}

	fullPath := filepath.Join(r.path, p.Filename())
	if r.config.Logger != nil {
		r.config.Logger.Debug("writing post to disk", "number", p.Number, "path", fullPath)
	}

	if err := createFileAtomic(fullPath, data, r.config.FileMode); err != nil {
		return "", err
	}
	return fullPath, nil
}

// Get reads post n from disk.
func (r *Repository) Get(ctx context.Context, n int) (core.Post, error) {
	if err := ctx.Err(); err != nil {
		return core.Post{}, err
	}
	return r.read(filepath.Join(r.path, core.Post{Number: n}.Filename()))
}

// List returns all posts ordered by number.
func (r *Repository) List(ctx context.Context) ([]core.Post, error) {
	numbers, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Ints(numbers)

	posts := make([]core.Post, 0, len(numbers))
	for _, n := range numbers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := r.Get(ctx, n)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *Repository) read(path string) (core.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Post{}, err
	}
	defer f.Close()

	p, err := r.serializer.Parse(f)
	if err != nil {
		return core.Post{}, fmt.Errorf("failed to parse post %s: %w", filepath.Base(path), err)
	}

	// The filename is authoritative for the number.
	if m := postName.FindStringSubmatch(filepath.Base(path)); m != nil {
		n, _ := strconv.Atoi(m[1])
		if p.Number != 0 && p.Number != n && r.config.Logger != nil {
			r.config.Logger.Warn("post slug does not match filename", "file", filepath.Base(path), "slug", p.Number)
		}
		p.Number = n
	}
	return *p, nil
}

// scan returns the numbers of all post files in the content directory.
func (r *Repository) scan(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.checkDir(); err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(r.path), PostPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.path, err)
	}

	numbers := make([]int, 0, len(matches))
	for _, name := range matches {
		m := postName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	r.mu.Lock()
	r.lastScan = len(numbers)
	r.mu.Unlock()

	if r.config.Logger != nil {
		r.config.Logger.Debug("scanned content directory", "path", r.path, "posts", len(numbers))
	}
	return numbers, nil
}

func (r *Repository) checkDir() error {
	info, err := os.Stat(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", core.ErrContentDirMissing, r.path)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("content path is not a directory: %s", r.path)
	}
	return nil
}

var _ core.Repository = (*Repository)(nil)
