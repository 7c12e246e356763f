// Package feed implements the phrase feed controller: a bounded,
// recency-ordered history of phrases kept in sync with a display surface.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/ports"
)

// Controller owns the phrase history and drives the display surface. Fields
// are wired by the container; Surface may be attached later (the watch view
// builds its surface around the controller), in which case appends still
// mutate the history and rendering resumes once a surface is present.
type Controller struct {
	Source ports.PhraseSource
	Store  ports.FeedRepository
	Logger ports.Logger

	// FetchTimeout bounds a single fetch. Zero means no timeout; a request
	// that never completes simply never appends.
	FetchTimeout time.Duration

	mu      sync.Mutex
	surface ports.Surface
	history domain.History
	wg      sync.WaitGroup
}

// SetSurface attaches the display surface and immediately re-renders the
// current state onto it.
func (c *Controller) SetSurface(s ports.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surface = s
	c.renderLocked()
}

// RequestPhrase issues one asynchronous fetch for the given category. It does
// not block the caller and reports nothing back: on success the decoded
// phrase is appended (triggering a render), on failure the attempt is logged
// and dropped. Overlapping calls run independently; history order follows
// completion order, not invocation order.
func (c *Controller) RequestPhrase(ctx context.Context, category string) {
	if c.Source == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		phrase, err := c.Fetch(ctx, category)
		if err != nil {
			if c.Logger != nil {
				c.Logger.Warn("phrase fetch failed", map[string]interface{}{
					"category": category,
					"error":    err.Error(),
				})
			}
			return
		}
		c.AppendPhrase(phrase)
	}()
}

// Fetch performs the synchronous fetch step of RequestPhrase: one request to
// the source, plus a feed log entry when a store is configured. It does not
// touch the history; callers that want feed semantics follow up with
// AppendPhrase.
func (c *Controller) Fetch(ctx context.Context, category string) (string, error) {
	if c.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.FetchTimeout)
		defer cancel()
	}

	start := time.Now()
	phrase, err := c.Source.Fetch(ctx, category)
	if err != nil {
		return "", err
	}

	if c.Store != nil {
		record := domain.FeedRecord{
			Timestamp:  time.Now(),
			Category:   category,
			Phrase:     phrase,
			Endpoint:   c.Source.Endpoint(),
			DurationMS: time.Since(start).Milliseconds(),
		}
		if err := c.Store.Save(record); err != nil && c.Logger != nil {
			c.Logger.Warn("feed log save failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return phrase, nil
}

// AppendPhrase appends a phrase as the new current entry, evicting the oldest
// entry when the history is full, then re-renders. Append and render happen
// under one lock so concurrent completions cannot interleave mid-operation.
// This operation cannot fail.
func (c *Controller) AppendPhrase(phrase string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history.Append(phrase)
	c.renderLocked()
}

// Render redraws the attached surface from the current history.
func (c *Controller) Render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked()
}

// renderLocked rebuilds the surface: current slot gets the tail, then the
// history container is cleared and repopulated most-recent-first with the
// fade ramp applied. Callers must hold c.mu.
func (c *Controller) renderLocked() {
	if c.surface == nil {
		return
	}
	current, ok := c.history.Current()
	if !ok {
		return
	}
	c.surface.SetCurrent(current)
	c.surface.ClearHistory()
	for i, phrase := range c.history.Recent() {
		c.surface.AppendHistory(phrase, domain.OpacityForRank(i+1))
	}
}

// History returns a snapshot of the retained phrases, oldest first.
func (c *Controller) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Snapshot()
}

// Current returns the most recent phrase, if any.
func (c *Controller) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Current()
}

// Wait blocks until all in-flight RequestPhrase goroutines have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}
