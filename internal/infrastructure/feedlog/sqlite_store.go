// Package feedlog persists fetched phrases so past feeds can be inspected,
// searched, and exported after the process exits. The bounded in-memory
// history the display renders from never reads this log.
package feedlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/pkg/filesystem"
	"github.com/backwardspy/randnd/internal/ports"
)

// SQLiteStore persists the feed log in a SQLite database.
type SQLiteStore struct {
	db            *sql.DB
	path          string
	mu            sync.Mutex
	retentionDays int
}

// NewSQLiteStore creates (or opens) the ~/.randnd/feed/feed.db database.
// When the database cannot be opened the store degrades to the JSONL file
// fallback next to it.
func NewSQLiteStore(retentionDays int) *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".randnd", "feed", "feed.db")
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, retentionDays: retentionDays}
	}
	store := &SQLiteStore{db: db, path: path, retentionDays: retentionDays}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path, retentionDays: retentionDays}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS phrases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		category TEXT,
		phrase TEXT,
		endpoint TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record and applies the retention policy.
func (s *SQLiteStore) Save(record domain.FeedRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO phrases
		(timestamp, category, phrase, endpoint, duration_ms)
		VALUES (?, ?, ?, ?, ?)`,
		record.Timestamp.Format(domain.TimestampFormat),
		record.Category,
		record.Phrase,
		record.Endpoint,
		record.DurationMS,
	)
	if err != nil {
		return err
	}
	if s.retentionDays > 0 {
		return s.pruneLocked(s.retentionDays)
	}
	return nil
}

// Records returns feed log entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.FeedRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, category, phrase, endpoint, duration_ms FROM phrases")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE phrase LIKE ? OR category LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.FeedRecord
	for rows.Next() {
		var rec domain.FeedRecord
		var ts string
		if err := rows.Scan(&ts, &rec.Category, &rec.Phrase, &rec.Endpoint, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all feed log entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM phrases")
	return err
}

// ExportJSON writes the phrase table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// PruneOlderThan removes entries older than N days.
func (s *SQLiteStore) PruneOlderThan(days int) error {
	if days <= 0 {
		return nil
	}
	if s.db == nil {
		return s.fallback().PruneOlderThan(days)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pruneLocked(days)
}

func (s *SQLiteStore) pruneLocked(days int) error {
	_, err := s.db.Exec("DELETE FROM phrases WHERE datetime(timestamp) < datetime('now', ?)",
		fmt.Sprintf("-%d days", days))
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: strings.TrimSuffix(s.path, ".db") + ".jsonl"}
}

var _ ports.FeedRepository = (*SQLiteStore)(nil)
