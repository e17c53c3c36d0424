package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/1ekc/gfl-pages/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.ProjectDir = filepath.Join(base, "project")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithWatchDir enables import watching over the given directory.
func WithWatchDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Import.Watch = true
		c.Import.WatchDir = dir
	}
}
