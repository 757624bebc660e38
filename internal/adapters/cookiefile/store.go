// Package cookiefile implements the durable state store as a single small
// JSON file of expiring entries, mirroring cookie semantics: each value
// has a lifetime and a hard size ceiling of a few kilobytes. Callers must
// not assume capacity beyond MaxValueSize when this backend is selected.
package cookiefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"bakerspal/internal/logging"
	"bakerspal/internal/ports"
)

// MaxValueSize is the ceiling for a single serialized value, matching the
// size budget of a browser cookie.
const MaxValueSize = 4096

// DefaultTTL is how long an entry lives before it reads as absent.
const DefaultTTL = 365 * 24 * time.Hour

type entry struct {
	Value   json.RawMessage `json:"value"`
	Expires time.Time       `json:"expires"`
}

// Store implements ports.StateStore on one expiring JSON file
type Store struct {
	path string
	ttl  time.Duration
	log  *zap.Logger
}

var _ ports.StateStore = (*Store)(nil)

// Option configures the Store
type Option func(*Store)

// WithLogger sets the logger used for dropped writes and read failures
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTTL overrides the entry lifetime
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// Open opens (creating if needed) the cookie file under dataDir
func Open(dataDir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &Store{
		path: filepath.Join(dataDir, "cookies.json"),
		ttl:  DefaultTTL,
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Get reads and decodes the value stored under key. Missing, expired, and
// unparseable entries all read as absent.
func (s *Store) Get(key string, into any) bool {
	entries := s.load()
	e, ok := entries[key]
	if !ok {
		return false
	}
	if time.Now().After(e.Expires) {
		return false
	}
	if err := json.Unmarshal(e.Value, into); err != nil {
		s.log.Warn("stored state is not parseable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set serializes and writes the value under key with a fresh expiry.
// Values over MaxValueSize are logged and dropped, as are file failures.
func (s *Store) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("state serialization failed, write dropped", zap.String("key", key), zap.Error(err))
		return
	}
	if len(raw) > MaxValueSize {
		s.log.Warn("value exceeds cookie size ceiling, write dropped",
			zap.String("key", key), zap.Int("size", len(raw)), zap.Int("limit", MaxValueSize))
		return
	}

	entries := s.load()
	entries[key] = entry{Value: raw, Expires: time.Now().Add(s.ttl)}

	data, err := json.Marshal(entries)
	if err != nil {
		s.log.Warn("cookie file serialization failed, write dropped", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Warn("cookie file write failed, write dropped", zap.Error(err))
	}
}

// Close is a no-op; the file is written synchronously on every Set
func (s *Store) Close() error {
	return nil
}

// load reads the cookie file, treating a missing or corrupt file as empty
func (s *Store) load() map[string]entry {
	entries := map[string]entry{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("cookie file read failed", zap.Error(err))
		}
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("cookie file is corrupt, starting empty", zap.Error(err))
		return map[string]entry{}
	}
	return entries
}
