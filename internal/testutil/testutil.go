// Package testutil provides shared test helpers for setting up document stores.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ceciliomichael/folder-structure-mcp/internal/docstore"
)

// TestStore creates a temporary docs directory with a docstore.Store.
func TestStore(t *testing.T) (string, *docstore.Store) {
	t.Helper()
	docsDir := t.TempDir()
	store, err := docstore.New(docsDir)
	if err != nil {
		t.Fatal(err)
	}
	return docsDir, store
}

// WriteDoc places raw content at name inside docsDir, bypassing the store.
func WriteDoc(t *testing.T, docsDir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(docsDir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
