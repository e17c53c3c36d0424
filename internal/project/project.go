package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/story"
)

// ErrLocked is returned when another process holds the project lock.
var ErrLocked = errors.New("project is locked by another process")

// Project is an exclusively locked story project directory.
type Project struct {
	dir    string
	lock   *flock.Flock
	logger *slog.Logger
}

// Open locks the project directory for this process. The directory is
// created when missing.
func Open(dir string, logger *slog.Logger) (*Project, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".gfl-pages.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return &Project{
		dir:    dir,
		lock:   lock,
		logger: logging.WithComponent(logger, "project"),
	}, nil
}

// Close releases the project lock.
func (p *Project) Close() error {
	if p == nil || p.lock == nil {
		return nil
	}
	return p.lock.Unlock()
}

// StoryPath returns the story document location inside the project.
func (p *Project) StoryPath() string {
	return filepath.Join(p.dir, "story.json")
}

// LoadStory reads the story document and seeds the allocator from it.
// A missing file yields an empty story; the allocator still gets seeded
// so the first allocated id is "1".
func (p *Project) LoadStory(alloc *story.Allocator) (*story.GfStory, error) {
	doc := story.New()

	data, err := os.ReadFile(p.StoryPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read story: %w", err)
		}
	} else if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse story: %w", err)
	}

	alloc.Seed(doc)
	p.logger.Info("story loaded", slog.Int("lines", len(doc.Lines)))
	return doc, nil
}

// SaveStory writes the story document atomically.
func (p *Project) SaveStory(doc *story.GfStory) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode story: %w", err)
	}

	target := p.StoryPath()
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write story: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace story: %w", err)
	}

	p.logger.Info("story saved", slog.Int("lines", len(doc.Lines)))
	return nil
}
