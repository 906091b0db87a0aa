// Package apperr defines sentinel errors shared across the application so
// callers can branch on failure kind with errors.Is before rendering a
// human-readable message at the protocol boundary.
package apperr

import "errors"

var (
	// ErrNotFound marks a requested document that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidName marks a document name that was rejected before any
	// filesystem access (empty, or containing path separators/traversal).
	ErrInvalidName = errors.New("invalid name")
)
