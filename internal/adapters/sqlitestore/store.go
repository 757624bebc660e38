// Package sqlitestore implements the durable state store on a SQLite
// key/value table. This is the roomy backend: values are whole JSON
// documents with no practical size ceiling.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"bakerspal/internal/logging"
	"bakerspal/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.StateStore backed by SQLite
type Store struct {
	db  *sql.DB
	log *zap.Logger
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

// Open opens (creating if needed) the store database under dataDir
func Open(dataDir string, opts ...Option) (*Store, error) {
	s := &Store{log: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "bakerspal.db")
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pragmas + schema in a single batch.
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + schemaVersion + `');
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s.db = db
	return s, nil
}

// Get reads and decodes the value stored under key. A missing key or a
// value that no longer parses reads as absent.
func (s *Store) Get(key string, into any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.log.Warn("state read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		s.log.Warn("stored state is not parseable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set serializes and writes the value under key. Failures are logged and
// the write is dropped; the in-memory state stays authoritative.
func (s *Store) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("state serialization failed, write dropped", zap.String("key", key), zap.Error(err))
		return
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)`, key, string(raw)); err != nil {
		s.log.Warn("state write failed, write dropped", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
