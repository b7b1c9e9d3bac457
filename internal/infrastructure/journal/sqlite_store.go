// Package journal records completed lifecycle operations in a SQLite
// database next to the CLI config.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/filesystem"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// SQLiteStore persists the operation journal. Appending is best-effort;
// a store that failed to open reports errors but never blocks the
// lifecycle pipeline (callers log and continue).
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the journal at the default location.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(defaultPath())
}

// NewSQLiteStoreAt creates (or opens) the journal at path.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func defaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "noctalia", "journal.db")
	}
	return filepath.Join(filesystem.UserHomeDir(), ".config", "noctalia", "journal.db")
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		component TEXT,
		action TEXT,
		source TEXT,
		version TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Append inserts a new journal row.
func (s *SQLiteStore) Append(entry domain.JournalEntry) error {
	if s.db == nil {
		return fmt.Errorf("journal unavailable at %s", s.path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO operations
		(timestamp, component, action, source, version, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.Format(time.RFC3339),
		entry.Component,
		string(entry.Action),
		string(entry.Source),
		entry.Version,
		entry.DurationMS,
	)
	return err
}

// Entries returns the most recent operations, newest first.
func (s *SQLiteStore) Entries(limit int) ([]domain.JournalEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("journal unavailable at %s", s.path)
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT timestamp, component, action, source, version, duration_ms
		FROM operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			ts     string
			entry  domain.JournalEntry
			action string
			source string
		)
		if err := rows.Scan(&ts, &entry.Component, &action, &source, &entry.Version, &entry.DurationMS); err != nil {
			return nil, err
		}
		entry.Action = domain.JournalAction(action)
		entry.Source = domain.SourceKind(source)
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.Timestamp = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.Journal = (*SQLiteStore)(nil)
