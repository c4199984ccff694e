// Package core holds the post domain and the workflow that creates new posts.
package core

import (
	"fmt"
	"time"
)

const (
	// NumberWidth is the number of digits in a post filename.
	NumberWidth = 6

	// MaxNumber is the largest number that fits in NumberWidth digits.
	MaxNumber = 999999

	// Extension is the file extension of post files.
	Extension = ".md"

	// DateLayout is the layout of the date field in the post header.
	DateLayout = "2006-01-02 15:04:05Z"
)

// Post is a single numbered blog entry.
// Its Number doubles as the slug in the header and the name of the file.
type Post struct {
	Number int
	Title  string
	Date   time.Time
	Body   string
}

// NewPost builds a post with the default title for n, dated at the given instant in UTC.
func NewPost(n int, body string, at time.Time) Post {
	return Post{
		Number: n,
		Title:  DefaultTitle(n),
		Date:   at.UTC(),
		Body:   body,
	}
}

// FormatNumber zero-pads n to NumberWidth digits.
func FormatNumber(n int) string {
	return fmt.Sprintf("%0*d", NumberWidth, n)
}

// Filename returns the post's file name, e.g. 000007.md.
func (p Post) Filename() string {
	return FormatNumber(p.Number) + Extension
}

// DefaultTitle is the title given to new posts.
func DefaultTitle(n int) string {
	return fmt.Sprintf("#%d", n)
}
