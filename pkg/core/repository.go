package core

import "context"

// Repository defines the contract for storing and retrieving posts.
type Repository interface {
	// NextNumber returns one more than the highest post number present.
	NextNumber(ctx context.Context) (int, error)

	// Create persists a new post and returns the path it was written to.
	// It never replaces an existing post.
	Create(ctx context.Context, p Post) (string, error)

	// List returns all posts ordered by number.
	List(ctx context.Context) ([]Post, error)

	// Path returns the location of the posts (e.g. the content directory).
	Path() string
}

// Editor captures the body of a new post from the user.
type Editor interface {
	// Edit blocks until the user is done and returns what they wrote.
	Edit(ctx context.Context) (string, error)
}

// Versioner records a newly created post in version control.
type Versioner interface {
	// CommitPost stages the file at path and commits it with msg.
	CommitPost(ctx context.Context, path string, msg string) error
}
