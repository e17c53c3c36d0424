package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
)

// Watcher registers files appearing under an assets directory as binary
// media records. The path relative to the watched root drives the same
// classification rules as bulk import.
type Watcher struct {
	root    string
	store   *media.Store
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher builds a recursive watcher over root. Existing subdirectories
// are registered immediately; new ones are picked up as they appear.
func NewWatcher(root string, store *media.Store, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		root:    root,
		store:   store,
		logger:  logging.WithComponent(logger, "watcher"),
		watcher: fsw,
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %q: %w", root, err)
	}
	return w, nil
}

// Run processes filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.logger.Info("watching assets", slog.String("dir", w.root))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.handle(ctx, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.Error(err))
		}
	}
}

func (w *Watcher) handle(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil {
		// Entries can vanish between the event and the stat.
		return
	}
	if info.IsDir() {
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("watch subdirectory failed", slog.String("dir", path), logging.Error(err))
		}
		return
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		w.logger.Warn("relativize path failed", slog.String("path", path), logging.Error(err))
		return
	}
	mediaType, name := Classify("/" + filepath.ToSlash(rel))

	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("read asset failed", slog.String("path", path), logging.Error(err))
		return
	}
	if _, err := w.store.AddData(ctx, mediaType, name, data); err != nil {
		w.logger.Warn("register asset failed",
			slog.String(logging.FieldMediaType, string(mediaType)),
			slog.String(logging.FieldName, name),
			logging.Error(err),
		)
		return
	}
	w.logger.Info("asset registered",
		slog.String(logging.FieldMediaType, string(mediaType)),
		slog.String(logging.FieldName, name),
	)
}
