package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/1ekc/gfl-pages/internal/logging"
	"github.com/1ekc/gfl-pages/internal/media"
)

// classifyRules maps path prefixes to media types in match order; sprite is
// the catch-all for anything the earlier rules miss.
var classifyRules = []struct {
	prefix    string
	mediaType media.Type
}{
	{"/audio/", media.TypeAudio},
	{"/images/background/", media.TypeBackground},
}

// Classify derives the media type and record name for an asset reference.
// HTTP(S) URLs contribute their path component; anything else is used
// verbatim as the path. The name is the final path segment.
func Classify(ref string) (media.Type, string) {
	path := ref
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if parsed, err := url.Parse(ref); err == nil {
			path = parsed.Path
		}
	}

	name := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		name = path[idx+1:]
	}

	for _, rule := range classifyRules {
		if strings.HasPrefix(path, rule.prefix) {
			return rule.mediaType, name
		}
	}
	return media.TypeSprite, name
}

// Importer registers asset references in the media store.
type Importer struct {
	store  *media.Store
	logger *slog.Logger
}

// New builds an importer over the given store.
func New(store *media.Store, logger *slog.Logger) *Importer {
	return &Importer{
		store:  store,
		logger: logging.WithComponent(logger, "importer"),
	}
}

// Import registers every reference as a remote link and returns the
// mapping from original reference to synthetic URL. A storage failure
// aborts the import and propagates; partial registrations stay in place.
func (imp *Importer) Import(ctx context.Context, refs []string) (map[string]string, error) {
	mapping := make(map[string]string, len(refs))
	for _, ref := range refs {
		mediaType, name := Classify(ref)
		stored, err := imp.store.AddLink(ctx, mediaType, name, ref)
		if err != nil {
			return nil, fmt.Errorf("import %q: %w", ref, err)
		}
		mapping[ref] = stored.Value()
	}
	imp.logger.Info("import finished", slog.Int("count", len(mapping)))
	return mapping, nil
}
