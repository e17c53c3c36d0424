package importer_test

import (
	"context"
	"testing"

	"github.com/1ekc/gfl-pages/internal/importer"
	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
	"github.com/1ekc/gfl-pages/internal/testsupport"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		ref      string
		wantType media.Type
		wantName string
	}{
		{"audio path", "/audio/bgm.mp3", media.TypeAudio, "bgm.mp3"},
		{"background path", "/images/background/sky.png", media.TypeBackground, "sky.png"},
		{"sprite fallback", "/images/char/hero.png", media.TypeSprite, "hero.png"},
		{"bare name", "hero.png", media.TypeSprite, "hero.png"},
		{"remote audio", "https://cdn.example.com/audio/bgm.mp3?v=2", media.TypeAudio, "bgm.mp3"},
		{"remote background", "HTTPS://cdn.example.com/images/background/sky.png", media.TypeBackground, "sky.png"},
		{"remote other", "http://cdn.example.com/stuff/hero.png", media.TypeSprite, "hero.png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mediaType, name := importer.Classify(tc.ref)
			if mediaType != tc.wantType || name != tc.wantName {
				t.Fatalf("Classify(%q) = (%q, %q), want (%q, %q)",
					tc.ref, mediaType, name, tc.wantType, tc.wantName)
			}
		})
	}
}

func TestImportRegistersAndMaps(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	imp := importer.New(store, logging.NewNop())

	ctx := context.Background()
	refs := []string{
		"/audio/bgm.mp3",
		"/images/background/sky.png",
		"/images/char/hero.png",
	}
	mapping, err := imp.Import(ctx, refs)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	want := map[string]string{
		"/audio/bgm.mp3":             "audio:bgm.mp3",
		"/images/background/sky.png": "background:sky.png",
		"/images/char/hero.png":      "sprite:hero.png",
	}
	if len(mapping) != len(want) {
		t.Fatalf("unexpected mapping size: %v", mapping)
	}
	for ref, synthetic := range want {
		if mapping[ref] != synthetic {
			t.Fatalf("mapping[%q] = %q, want %q", ref, mapping[ref], synthetic)
		}
	}

	// Each registration stores the original reference as a remote link.
	record, err := store.FindByName(ctx, media.TypeAudio, "bgm.mp3")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if record == nil || record.Link != "/audio/bgm.mp3" {
		t.Fatalf("unexpected stored record: %#v", record)
	}
	for mediaType, name := range map[media.Type]string{
		media.TypeBackground: "sky.png",
		media.TypeSprite:     "hero.png",
	} {
		record, err := store.FindByName(ctx, mediaType, name)
		if err != nil {
			t.Fatalf("FindByName failed: %v", err)
		}
		if record == nil {
			t.Fatalf("expected %s/%s to be registered", mediaType, name)
		}
	}
}

func TestImportEmptyInput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	imp := importer.New(store, logging.NewNop())

	mapping, err := imp.Import(context.Background(), nil)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(mapping) != 0 {
		t.Fatalf("expected empty mapping, got %v", mapping)
	}
}
