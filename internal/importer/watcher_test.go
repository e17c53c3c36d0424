package importer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/1ekc/gfl-pages/internal/importer"
	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
	"github.com/1ekc/gfl-pages/internal/testsupport"
)

func TestWatcherRegistersNewFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "audio"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	watcher, err := importer.NewWatcher(root, store, logging.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = watcher.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	payload := []byte("RIFF....")
	if err := os.WriteFile(filepath.Join(root, "audio", "bgm.mp3"), payload, 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		record, err := store.FindByName(context.Background(), media.TypeAudio, "bgm.mp3")
		if err != nil {
			t.Fatalf("FindByName failed: %v", err)
		}
		if record != nil && bytes.Equal(record.Data, payload) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("asset never registered, last record %#v", record)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
