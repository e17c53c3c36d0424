package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	_ "modernc.org/sqlite"

	"github.com/1ekc/gfl-pages/internal/config"
	"github.com/1ekc/gfl-pages/internal/logging"
)

// Store manages media persistence backed by SQLite, the session-local
// object URL registry, and the per-type live feeds.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger

	cacheMu sync.RWMutex
	cache   map[cacheKey]string

	objectMu sync.RWMutex
	objects  map[string][]byte

	feeds map[Type]*Feed

	publishWG sync.WaitGroup
}

type cacheKey struct {
	mediaType Type
	name      string
}

var nameCollator = collate.New(language.Und, collate.IgnoreCase)

// Open initializes or connects to the media database and primes the live
// feeds with the current table contents.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:      db,
		path:    dbPath,
		logger:  logging.WithComponent(logger, "media"),
		cache:   make(map[cacheKey]string),
		objects: make(map[string][]byte),
		feeds:   make(map[Type]*Feed, len(allTypes)),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	for _, mediaType := range allTypes {
		store.feeds[mediaType] = newFeed()
		items, err := store.list(context.Background(), mediaType)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		store.feeds[mediaType].publish(items)
	}
	return store, nil
}

// Close waits for in-flight feed publications, closes the feeds, and
// releases the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.publishWG.Wait()
	for _, feed := range s.feeds {
		feed.close()
	}
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Items returns the live list handle for a media type, or nil when the
// type is unknown. The handle's snapshots track the table's contents for
// the store's whole lifetime.
func (s *Store) Items(mediaType Type) *Feed {
	return s.feeds[mediaType]
}

// AddData upserts a binary asset by name and returns the stored record.
// The object URL cache is left untouched; the next read repopulates it.
func (s *Store) AddData(ctx context.Context, mediaType Type, name string, data []byte) (*Media, error) {
	return s.add(ctx, &Media{Type: mediaType, Name: name, Data: data})
}

// AddLink upserts a remote-link asset by name and returns the stored record.
func (s *Store) AddLink(ctx context.Context, mediaType Type, name, link string) (*Media, error) {
	return s.add(ctx, &Media{Type: mediaType, Name: name, Link: link})
}

func (s *Store) add(ctx context.Context, m *Media) (*Media, error) {
	table, ok := tableNames[m.Type]
	if !ok {
		return nil, fmt.Errorf("add media: unknown type %q", m.Type)
	}
	if m.Name == "" {
		return nil, errors.New("add media: name is empty")
	}

	var data any
	if !m.IsLink() {
		data = m.Data
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO `+table+` (name, data, link) VALUES (?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET data = excluded.data, link = excluded.link`,
		m.Name, data, nullableString(m.Link),
	)
	if err != nil {
		return nil, fmt.Errorf("add media: %w", err)
	}

	s.logger.Debug("media stored",
		slog.String(logging.FieldMediaType, string(m.Type)),
		slog.String(logging.FieldName, m.Name),
		slog.Bool("link", m.IsLink()),
	)
	s.publish(m.Type)
	return m, nil
}

// Delete removes the cache entry and the persistent record for a name.
// Deleting an absent name is not an error. Object URLs already handed out
// stay valid; reclaiming them is the caller's concern.
func (s *Store) Delete(ctx context.Context, mediaType Type, name string) error {
	table, ok := tableNames[mediaType]
	if !ok {
		return nil
	}

	s.cacheMu.Lock()
	delete(s.cache, cacheKey{mediaType, name})
	s.cacheMu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}

	s.logger.Debug("media deleted",
		slog.String(logging.FieldMediaType, string(mediaType)),
		slog.String(logging.FieldName, name),
	)
	s.publish(mediaType)
	return nil
}

// FindByName looks a record up directly in its table. Absent records
// yield (nil, nil); the cache is not involved.
func (s *Store) FindByName(ctx context.Context, mediaType Type, name string) (*Media, error) {
	table, ok := tableNames[mediaType]
	if !ok {
		return nil, nil
	}
	row := s.db.QueryRowContext(ctx, `SELECT name, data, link FROM `+table+` WHERE name = ?`, name)
	m, err := scanMedia(row, mediaType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}
	return m, nil
}

func (s *Store) list(ctx context.Context, mediaType Type) ([]Media, error) {
	table := tableNames[mediaType]
	rows, err := s.db.QueryContext(ctx, `SELECT name, data, link FROM `+table)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []Media
	for rows.Next() {
		m, err := scanMedia(rows, mediaType)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return nameCollator.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items, nil
}

// publish re-reads a type's table and pushes the snapshot to its feed.
// Delivery is asynchronous: the committing write returns to its caller
// before subscribers observe the new state.
func (s *Store) publish(mediaType Type) {
	feed := s.feeds[mediaType]
	if feed == nil {
		return
	}
	s.publishWG.Add(1)
	go func() {
		defer s.publishWG.Done()
		items, err := s.list(context.Background(), mediaType)
		if err != nil {
			s.logger.Warn("feed refresh failed",
				slog.String(logging.FieldMediaType, string(mediaType)),
				logging.Error(err),
			)
			return
		}
		feed.publish(items)
	}()
}

func scanMedia(scanner interface{ Scan(dest ...any) error }, mediaType Type) (*Media, error) {
	var (
		name string
		data []byte
		link sql.NullString
	)
	if err := scanner.Scan(&name, &data, &link); err != nil {
		return nil, err
	}
	return &Media{Type: mediaType, Name: name, Data: data, Link: link.String}, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
