// Package watcher logs filesystem changes to the docs directory. The store
// keeps no in-memory state, so nothing needs reconciling; the watcher exists
// so that edits made outside the tool surface show up in the server logs.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called after each observed document change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, name string)

// Watch starts an fsnotify watcher on the docs root and logs change events
// for *.md files until ctx is cancelled. cb (if non-nil) is called after
// each event. The namespace is flat, so only the root itself is watched.
func Watch(ctx context.Context, root string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".md") {
				continue
			}

			var kind string
			switch {
			case ev.Op&fsnotify.Create != 0:
				kind = "created"
			case ev.Op&fsnotify.Write != 0:
				kind = "updated"
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				kind = "deleted"
			default:
				continue
			}

			logger.Debug("watcher: document changed",
				slog.String("name", name),
				slog.String("op", kind))
			if cb != nil {
				cb(kind, name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
