package core

import "errors"

// Common errors.
var (
	// ErrEditorFailed is returned when the editor cannot be launched or exits with an error.
	ErrEditorFailed = errors.New("editor failed")

	// ErrEmptyBody is returned when the editor produced no content.
	ErrEmptyBody = errors.New("no content was written")

	// ErrCancelled is returned when the user interrupts the workflow.
	ErrCancelled = errors.New("operation cancelled")

	// ErrPostExists is returned when the target post file is already on disk.
	ErrPostExists = errors.New("post already exists")

	// ErrSequenceExhausted is returned when the next number no longer fits the filename pattern.
	ErrSequenceExhausted = errors.New("post numbers exhausted")

	// ErrContentDirMissing is returned when the content directory does not exist.
	ErrContentDirMissing = errors.New("content directory not found")
)
