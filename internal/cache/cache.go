// Package cache stores fetched API payloads as JSON files with per-source
// TTLs, fronted by an in-memory cache so repeated reads within one run skip
// the filesystem. A cache miss is a normal condition, never an error.
package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aikalabs/aika-go/internal/errors"
	"github.com/aikalabs/aika-go/internal/logging"
)

// defaultTTL applies to sources without an entry in the TTL table.
const defaultTTL = 30 * time.Minute

// ttlTable holds the freshness window per data source. Electricity prices
// publish once a day, transit disruptions change by the minute.
var ttlTable = map[string]time.Duration{
	"weather":     30 * time.Minute,
	"electricity": time.Hour,
	"aurora":      30 * time.Minute,
	"roadweather": 15 * time.Minute,
	"transit":     5 * time.Minute,
}

var logger *slog.Logger

func init() {
	logger = logging.ForService("cache")
	if logger == nil {
		logger = slog.Default().With("service", "cache")
	}
}

// Store is a two-level cache: go-cache in memory, JSON files on disk. The
// file level survives process restarts, which is what makes offline fallback
// after a fetch failure possible.
type Store struct {
	dir     string
	enabled bool
	mem     *gocache.Cache
}

// New returns a Store rooted at dir. A disabled store satisfies the same
// interface but never hits memory or disk. The memory level runs without a
// janitor goroutine: expired entries are rejected on read, and the process
// is short-lived anyway.
func New(dir string, enabled bool) *Store {
	return &Store{
		dir:     dir,
		enabled: enabled,
		mem:     gocache.New(defaultTTL, 0),
	}
}

// TTLFor returns the freshness window for a data source.
func TTLFor(source string) time.Duration {
	if ttl, ok := ttlTable[source]; ok {
		return ttl
	}
	return defaultTTL
}

// Get loads a fresh cached payload for the source into v and reports whether
// one was found. Stale or unreadable entries count as misses.
func (s *Store) Get(source string, v any) bool {
	if s == nil || !s.enabled {
		return false
	}

	if raw, ok := s.mem.Get(source); ok {
		if data, ok := raw.([]byte); ok {
			if err := json.Unmarshal(data, v); err == nil {
				return true
			}
		}
	}

	path := s.path(source)
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > TTLFor(source) {
		logger.Debug("cache entry expired", "source", source, "age", time.Since(info.ModTime()))
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("cache file unreadable", "source", source, "error", err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("cache file corrupt", "source", source, "error", err)
		return false
	}

	s.mem.Set(source, data, TTLFor(source))
	return true
}

// GetStale loads a cached payload regardless of age. Used as the offline
// fallback after a fetch failure.
func (s *Store) GetStale(source string, v any) bool {
	if s == nil || !s.enabled {
		return false
	}
	data, err := os.ReadFile(s.path(source))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// Put stores a payload for the source at both cache levels.
func (s *Store) Put(source string, v any) error {
	if s == nil || !s.enabled {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errors.New(err).
			Component("cache").
			Category(errors.CategoryCache).
			Context("source", source).
			Build()
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.New(err).
			Component("cache").
			Category(errors.CategoryFileIO).
			Context("source", source).
			Build()
	}
	if err := os.WriteFile(s.path(source), data, 0o644); err != nil {
		return errors.New(err).
			Component("cache").
			Category(errors.CategoryFileIO).
			Context("source", source).
			Build()
	}

	s.mem.Set(source, data, TTLFor(source))
	return nil
}

func (s *Store) path(source string) string {
	return filepath.Join(s.dir, source+".json")
}
