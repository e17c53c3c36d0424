package media

import (
	"context"

	"github.com/google/uuid"
)

const objectURLScheme = "blob:"

// DataURL returns a displayable URL for a record's payload. Remote links
// come back unchanged. Binary payloads always mint a fresh object URL and
// overwrite the cache entry for the record's name; callers that want the
// cached value must go through ToDataURL. The asymmetry doubles as a
// force-refresh path.
func (s *Store) DataURL(m *Media) string {
	if m.IsLink() {
		return m.Link
	}
	url := objectURLScheme + uuid.NewString()

	s.objectMu.Lock()
	s.objects[url] = m.Data
	s.objectMu.Unlock()

	s.cacheMu.Lock()
	s.cache[cacheKey{m.Type, m.Name}] = url
	s.cacheMu.Unlock()
	return url
}

// ToDataURL resolves any reference string to a displayable URL. Strings
// that are not synthetic media URLs pass through unchanged. Synthetic URLs
// resolve through the cache first, then the persistent table; a missing
// record resolves to the empty string rather than an error.
func (s *Store) ToDataURL(ctx context.Context, ref string) (string, error) {
	mediaType, name, ok := SplitURL(ref)
	if !ok {
		return ref, nil
	}

	s.cacheMu.RLock()
	cached, hit := s.cache[cacheKey{mediaType, name}]
	s.cacheMu.RUnlock()
	if hit {
		return cached, nil
	}

	m, err := s.FindByName(ctx, mediaType, name)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", nil
	}
	return s.DataURL(m), nil
}

// Object returns the payload registered under an object URL. The second
// result is false for URLs this session never issued.
func (s *Store) Object(url string) ([]byte, bool) {
	s.objectMu.RLock()
	data, ok := s.objects[url]
	s.objectMu.RUnlock()
	return data, ok
}
