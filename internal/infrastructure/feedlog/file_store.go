package feedlog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/pkg/filesystem"
	"github.com/backwardspy/randnd/internal/ports"
)

// FileStore appends feed records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a new feed log store under ~/.randnd/feed/feed.jsonl.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filepath.Join(filesystem.UserHomeDir(), ".randnd", "feed", "feed.jsonl"),
	}
}

// Save implements ports.FeedRepository.
func (f *FileStore) Save(record domain.FeedRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records loads feed log entries, newest first (best-effort).
func (f *FileStore) Records(limit int, search string) ([]domain.FeedRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.FeedRecord
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if len(line) == 0 {
			continue
		}
		var rec domain.FeedRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if search != "" && !strings.Contains(rec.Phrase, search) && !strings.Contains(rec.Category, search) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, nil
}

// Clear removes the feed log file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ExportJSON copies the feed log to the given destination as jsonl.
func (f *FileStore) ExportJSON(dest string) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// PruneOlderThan rewrites the log keeping only entries newer than N days.
func (f *FileStore) PruneOlderThan(days int) error {
	if days <= 0 {
		return nil
	}
	records, err := f.Records(0, "")
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -days)
	var buf bytes.Buffer
	// Records returns newest first; rewrite oldest first to keep append order.
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if rec.Timestamp.Before(cutoff) {
			continue
		}
		data, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.FeedRepository = (*FileStore)(nil)
