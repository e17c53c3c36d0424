package story_test

import (
	"fmt"
	"testing"

	"github.com/1ekc/gfl-pages/internal/story"
)

func storyWithIDs(ids ...string) *story.GfStory {
	s := story.New()
	for _, id := range ids {
		s.Append(&story.TextLine{ID: id})
	}
	return s
}

func TestSeedUsesMaxNumericID(t *testing.T) {
	alloc := story.NewAllocator()
	alloc.Seed(storyWithIDs("3", "x", "7", ""))
	if got := alloc.Next(); got != "8" {
		t.Fatalf("expected first id after seed to be 8, got %q", got)
	}
}

func TestSeedEmptyStoryStartsAtOne(t *testing.T) {
	alloc := story.NewAllocator()
	alloc.Seed(story.New())
	if got := alloc.Next(); got != "1" {
		t.Fatalf("expected first id 1, got %q", got)
	}
}

func TestSeedNilStoryStartsAtOne(t *testing.T) {
	alloc := story.NewAllocator()
	alloc.Seed(nil)
	if got := alloc.Next(); got != "1" {
		t.Fatalf("expected first id 1, got %q", got)
	}
}

func TestNextNeverCollidesWithSeededIDs(t *testing.T) {
	ids := []string{"1", "2", "10", "banana", "-4"}
	s := storyWithIDs(ids...)
	alloc := story.NewAllocator()
	alloc.Seed(s)

	existing := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id := alloc.Next()
		if _, clash := existing[id]; clash {
			t.Fatalf("allocated id %q collides with a seeded id", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("allocated id %q twice", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNextIsMonotonic(t *testing.T) {
	alloc := story.NewAllocator()
	alloc.Seed(storyWithIDs("41"))
	for i := 42; i < 47; i++ {
		if got, want := alloc.Next(), fmt.Sprintf("%d", i); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
