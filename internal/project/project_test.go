package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/project"
	"github.com/1ekc/gfl-pages/internal/story"
)

func mustOpen(t *testing.T, dir string) *project.Project {
	t.Helper()

	p, err := project.Open(dir, logging.NewNop())
	if err != nil {
		t.Fatalf("project.Open: %v", err)
	}
	t.Cleanup(func() {
		p.Close()
	})
	return p
}

func TestLoadMissingStoryYieldsEmptyDocument(t *testing.T) {
	p := mustOpen(t, t.TempDir())

	alloc := story.NewAllocator()
	doc, err := p.LoadStory(alloc)
	if err != nil {
		t.Fatalf("LoadStory failed: %v", err)
	}
	if len(doc.Lines) != 0 || len(doc.Characters) != 0 {
		t.Fatalf("expected empty story, got %#v", doc)
	}
	if got := alloc.Next(); got != "1" {
		t.Fatalf("expected allocator seeded to 0, first id %q", got)
	}
}

func TestSaveLoadRoundTripSeedsAllocator(t *testing.T) {
	dir := t.TempDir()
	p := mustOpen(t, dir)

	alloc := story.NewAllocator()
	doc, err := p.LoadStory(alloc)
	if err != nil {
		t.Fatalf("LoadStory failed: %v", err)
	}
	doc.Append(&story.TextLine{ID: "5", Text: "hello"})
	doc.Append(&story.SceneLine{ID: "9", Scene: story.SceneBackground, Media: "background:sky.png"})
	if err := p.SaveStory(doc); err != nil {
		t.Fatalf("SaveStory failed: %v", err)
	}

	reloadedAlloc := story.NewAllocator()
	reloaded, err := p.LoadStory(reloadedAlloc)
	if err != nil {
		t.Fatalf("LoadStory failed: %v", err)
	}
	if len(reloaded.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(reloaded.Lines))
	}
	if got := reloadedAlloc.Next(); got != "10" {
		t.Fatalf("expected allocator reseeded past max id, got %q", got)
	}
}

func TestSaveWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	p := mustOpen(t, dir)

	doc := story.New()
	doc.Append(&story.TextLine{ID: "1"})
	if err := p.SaveStory(doc); err != nil {
		t.Fatalf("SaveStory failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "story.json.tmp")); !os.IsNotExist(err) {
		t.Fatal("expected temp file to be renamed away")
	}
}

func TestOpenRefusesSecondLock(t *testing.T) {
	dir := t.TempDir()
	mustOpen(t, dir)

	if _, err := project.Open(dir, logging.NewNop()); err == nil {
		t.Fatal("expected second Open to fail while locked")
	}
}
