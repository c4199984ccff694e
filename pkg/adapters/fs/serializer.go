package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/quill/pkg/core"
)

const delimiter = "---"

// Serializer defines how a post is read from and written to a file.
type Serializer interface {
	// Parse reads from r and returns a Post.
	Parse(r io.Reader) (*core.Post, error)
	// Serialize converts the Post to bytes.
	Serialize(p core.Post) ([]byte, error)
}

// MarkdownSerializer handles the Pelican metadata block used by post files:
//
//	---
//	slug: 7
//	title: #7
//	date: 2026-10-19 14:03:09Z
//	---
//
//	body
//
// Values are kept as raw text. A YAML decoder would read "title: #7" as a comment.
type MarkdownSerializer struct{}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{}
}

func (s *MarkdownSerializer) Serialize(p core.Post) ([]byte, error) {
	if p.Number < 1 {
		return nil, fmt.Errorf("invalid post number %d", p.Number)
	}
	title := p.Title
	if title == "" {
		title = core.DefaultTitle(p.Number)
	}
	if strings.ContainsAny(title, "\r\n") {
		return nil, errors.New("title must be a single line")
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	fmt.Fprintf(&buf, "slug: %d\n", p.Number)
	fmt.Fprintf(&buf, "title: %s\n", title)
	fmt.Fprintf(&buf, "date: %s\n", p.Date.UTC().Format(core.DateLayout))
	buf.WriteString(delimiter + "\n\n")
	buf.WriteString(p.Body)

	return buf.Bytes(), nil
}

func (s *MarkdownSerializer) Parse(r io.Reader) (*core.Post, error) {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if strings.TrimRight(first, "\r\n") != delimiter {
		return nil, errors.New("missing header block")
	}

	post := &core.Post{}
	closed := false
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == delimiter {
			closed = true
			break
		}
		if err := s.parseField(post, trimmed); err != nil {
			return nil, err
		}
		if err == io.EOF {
			break
		}
	}
	if !closed {
		return nil, errors.New("header started but no closing delimiter found")
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	body := string(rest)
	if strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	} else if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}
	post.Body = body

	return post, nil
}

// parseField reads one "key: value" line. Indented continuation lines and
// lines without a key belong to metadata quill does not use and are skipped.
func (s *MarkdownSerializer) parseField(p *core.Post, line string) error {
	if strings.TrimSpace(line) == "" || line[0] == ' ' || line[0] == '\t' {
		return nil
	}
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case "slug":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid slug %q: %w", value, err)
		}
		p.Number = n
	case "title":
		p.Title = value
	case "date":
		t, err := time.Parse(core.DateLayout, value)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", value, err)
		}
		p.Date = t.UTC()
	}
	return nil
}
