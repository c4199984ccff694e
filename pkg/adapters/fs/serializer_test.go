package fs

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quill/pkg/core"
)

func TestMarkdownSerializer_Serialize(t *testing.T) {
	s := NewMarkdownSerializer()
	p := core.NewPost(7, "hello", time.Date(2026, 10, 19, 14, 3, 9, 0, time.UTC))

	data, err := s.Serialize(p)
	require.NoError(t, err)

	want := "---\nslug: 7\ntitle: #7\ndate: 2026-10-19 14:03:09Z\n---\n\nhello"
	assert.Equal(t, want, string(data))
}

func TestMarkdownSerializer_SerializeRejectsBadInput(t *testing.T) {
	s := NewMarkdownSerializer()

	_, err := s.Serialize(core.Post{Number: 0})
	assert.Error(t, err)

	_, err = s.Serialize(core.Post{Number: 1, Title: "two\nlines"})
	assert.Error(t, err)
}

func TestMarkdownSerializer_RoundTrip(t *testing.T) {
	s := NewMarkdownSerializer()
	body := "# heading\n\n---\n\nbody with a rule above\n"
	p := core.NewPost(42, body, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	data, err := s.Serialize(p)
	require.NoError(t, err)

	got, err := s.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	assert.Equal(t, 42, got.Number)
	assert.Equal(t, "#42", got.Title)
	assert.True(t, p.Date.Equal(got.Date))
	assert.Equal(t, body, got.Body)
}

func TestMarkdownSerializer_Parse(t *testing.T) {
	s := NewMarkdownSerializer()

	t.Run("extra metadata is ignored", func(t *testing.T) {
		in := "---\r\nslug: 3\r\ntitle: Custom Title\r\ntags: misc\r\ndate: 2024-05-06 07:08:09Z\r\n---\r\n\r\ntext"
		p, err := s.Parse(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, 3, p.Number)
		assert.Equal(t, "Custom Title", p.Title)
		assert.Equal(t, "text", p.Body)
	})

	t.Run("continuation lines are skipped", func(t *testing.T) {
		in := "---\nslug: 9\nsummary: first line\n  second: line\n\tthird line\nno colon here\ntitle: #9\ndate: 2024-05-06 07:08:09Z\n---\n\nbody"
		p, err := s.Parse(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, 9, p.Number)
		assert.Equal(t, "#9", p.Title)
		assert.Equal(t, "body", p.Body)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := s.Parse(strings.NewReader("just text"))
		assert.Error(t, err)
	})

	t.Run("unterminated header", func(t *testing.T) {
		_, err := s.Parse(strings.NewReader("---\nslug: 1\n"))
		assert.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := s.Parse(strings.NewReader("---\ndate: yesterday\n---\n"))
		assert.Error(t, err)
	})
}
