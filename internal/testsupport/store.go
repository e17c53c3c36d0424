package testsupport

import (
	"context"
	"testing"

	"github.com/1ekc/gfl-pages/internal/config"
	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
)

// MustOpenStore opens a media.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *media.Store {
	t.Helper()

	store, err := media.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("media.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddLink registers a remote-link asset for tests.
func AddLink(t testing.TB, store *media.Store, mediaType media.Type, name, link string) *media.Media {
	t.Helper()

	m, err := store.AddLink(context.Background(), mediaType, name, link)
	if err != nil {
		t.Fatalf("store.AddLink: %v", err)
	}
	return m
}

// AddData registers a binary asset for tests.
func AddData(t testing.TB, store *media.Store, mediaType media.Type, name string, data []byte) *media.Media {
	t.Helper()

	m, err := store.AddData(context.Background(), mediaType, name, data)
	if err != nil {
		t.Fatalf("store.AddData: %v", err)
	}
	return m
}
