package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Feed constants
const (
	// HistoryCapacity is the fixed number of phrases the in-memory history retains.
	HistoryCapacity = 10
	// OpacityFloor is the base term of the history fade formula.
	OpacityFloor = 0.2
)

// Timeout and duration constants
const (
	// DefaultTickInterval is how often the watch view auto-regenerates.
	DefaultTickInterval = 30 * time.Second
	// DefaultProbeTimeout bounds a single doctor probe against the phrase service.
	DefaultProbeTimeout = 5 * time.Second
)

// Feed log constants
const (
	// DefaultLogLimit is the default number of feed log records to display
	DefaultLogLimit = 20
	// DefaultLogSearchLimit is the default number of search results to return
	DefaultLogSearchLimit = 50
	// DefaultLogRetainDays is the default number of days to retain feed log records
	DefaultLogRetainDays = 30
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
