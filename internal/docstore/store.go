// Package docstore implements the flat Markdown document store: a single
// directory of *.md files with enumerate, read, create-or-overwrite, and
// delete operations. Failures are reported as typed errors; rendering them
// to human-readable strings is the MCP layer's job.
package docstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ceciliomichael/folder-structure-mcp/internal/apperr"
)

// Store manages Markdown documents in a single directory.
type Store struct {
	root string // absolute path to the docs directory
}

// New creates a Store rooted at the given directory.
// The directory must already exist.
func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("docstore: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("docstore: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docstore: root is not a directory: %s", abs)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute path of the docs directory.
func (s *Store) Root() string {
	return s.root
}

// Filename appends the .md extension when name lacks it. No other
// normalization is applied; read and remove operate on names verbatim,
// while Save additionally kebab-cases (a deliberate asymmetry kept for
// compatibility with existing callers).
func Filename(name string) string {
	if !strings.HasSuffix(name, ".md") {
		return name + ".md"
	}
	return name
}

// kebabCase lowercases text and replaces spaces with hyphens.
func kebabCase(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), " ", "-")
}

// resolve joins filename to the root, rejecting anything that is not a
// bare filename inside it. The namespace is flat: subdirectories, absolute
// paths, and traversal sequences are all invalid rather than errors from
// the filesystem.
func (s *Store) resolve(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filename == ".md" ||
		strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return "", fmt.Errorf("docstore: %w: %q", apperr.ErrInvalidName, filename)
	}
	return filepath.Join(s.root, filename), nil
}

// List returns the names of all Markdown files directly under the root,
// in directory-scan order. An empty store yields an empty slice, not an
// error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("docstore: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Read returns the content of the named document. The .md extension is
// appended when missing; the name is otherwise used verbatim. A missing
// document reports apperr.ErrNotFound.
func (s *Store) Read(name string) ([]byte, error) {
	abs, err := s.resolve(Filename(name))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("docstore: read %s: %w", name, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("docstore: read %s: %w", name, err)
	}
	return data, nil
}

// Save writes content under the kebab-cased name (lowercase, spaces
// replaced by hyphens, .md appended when missing) and returns the
// resulting filename. An existing document is overwritten unconditionally:
// Save is idempotent create-or-replace. The write is atomic, tmp file →
// fsync → rename.
func (s *Store) Save(name, content string) (string, error) {
	filename := Filename(kebabCase(name))
	abs, err := s.resolve(filename)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.root, ".docs-tmp-*")
	if err != nil {
		return "", fmt.Errorf("docstore: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return "", fmt.Errorf("docstore: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("docstore: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("docstore: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return "", fmt.Errorf("docstore: rename: %w", err)
	}
	success = true
	return filename, nil
}

// Remove deletes the named document. The .md extension is appended when
// missing; no kebab normalization is applied. A missing document reports
// apperr.ErrNotFound with no side effects, including when the file
// vanishes between the existence check and the delete.
func (s *Store) Remove(name string) error {
	abs, err := s.resolve(Filename(name))
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("docstore: remove %s: %w", name, apperr.ErrNotFound)
	} else if err != nil {
		return fmt.Errorf("docstore: remove %s: %w", name, err)
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("docstore: remove %s: %w", name, apperr.ErrNotFound)
		}
		return fmt.Errorf("docstore: remove %s: %w", name, err)
	}
	return nil
}
