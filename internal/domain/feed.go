package domain

import (
	"fmt"
	"time"
)

// FeedRecord captures one successfully fetched phrase for the feed log.
type FeedRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Category   string    `json:"category"`
	Phrase     string    `json:"phrase"`
	Endpoint   string    `json:"endpoint"`
	DurationMS int64     `json:"duration_ms"`
}

// DecodeError reports a phrase service response that could not be decoded:
// either the body was not valid JSON or the phrase field was absent or not a
// string.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode phrase response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode phrase response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
