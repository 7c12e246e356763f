// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The feed controller depends only on
// these abstractions; concrete implementations (HTTP source, terminal
// surface, SQLite feed log) live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/backwardspy/randnd/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.randnd/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// PhraseSource fetches one phrase for a category from the remote phrase
// service. The category is substituted verbatim into the request path, so
// callers must supply path-safe values.
type PhraseSource interface {
	// Endpoint returns the base URL the source talks to.
	Endpoint() string
	Fetch(ctx context.Context, category string) (string, error)
}

// Surface is the display the feed controller renders onto. It exposes a
// current-phrase slot and a history container whose items carry an opacity
// from the fade ramp (the ramp is not clamped to 1.0). The controller always
// issues SetCurrent, then ClearHistory, then zero or more AppendHistory calls
// in most-recent-first order.
type Surface interface {
	SetCurrent(phrase string)
	ClearHistory()
	AppendHistory(phrase string, opacity float64)
}

// FeedRepository persists successfully fetched phrases for later inspection.
// This is an audit log; the bounded in-memory history never touches it.
type FeedRepository interface {
	Save(record domain.FeedRecord) error
	Records(limit int, search string) ([]domain.FeedRecord, error)
	Clear() error
	ExportJSON(dest string) error
	PruneOlderThan(days int) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external
// services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
