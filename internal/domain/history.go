package domain

// History is the bounded, recency-ordered list of fetched phrases. The tail is
// the current phrase; when an append would exceed HistoryCapacity the oldest
// entry is evicted first. History is not safe for concurrent use on its own;
// the feed controller serializes all access to it.
type History struct {
	phrases []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{phrases: make([]string, 0, HistoryCapacity)}
}

// Append adds phrase as the new tail, evicting from the head while the
// capacity is exceeded.
func (h *History) Append(phrase string) {
	h.phrases = append(h.phrases, phrase)
	for len(h.phrases) > HistoryCapacity {
		h.phrases = h.phrases[1:]
	}
}

// Len returns the number of retained phrases.
func (h *History) Len() int {
	return len(h.phrases)
}

// Current returns the tail (most recent) phrase. The second return is false
// when the history is empty.
func (h *History) Current() (string, bool) {
	if len(h.phrases) == 0 {
		return "", false
	}
	return h.phrases[len(h.phrases)-1], true
}

// Snapshot returns a copy of the retained phrases, oldest first.
func (h *History) Snapshot() []string {
	out := make([]string, len(h.phrases))
	copy(out, h.phrases)
	return out
}

// Recent returns the retained phrases excluding the tail, most recent first.
// The entry at index i has recency rank i+1 relative to the current phrase.
func (h *History) Recent() []string {
	if len(h.phrases) < 2 {
		return nil
	}
	out := make([]string, 0, len(h.phrases)-1)
	for i := len(h.phrases) - 2; i >= 0; i-- {
		out = append(out, h.phrases[i])
	}
	return out
}

// OpacityForRank computes the fade applied to a history item at the given
// 1-based recency rank. The result is deliberately not clamped: rank 1 yields
// 1.1, matching the observed fade ramp of the display this feed reproduces.
func OpacityForRank(rank int) float64 {
	return OpacityFloor + (1 - float64(rank)/float64(HistoryCapacity))
}
