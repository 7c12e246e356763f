// Package source provides the HTTP adapter for the remote phrase service.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/ports"
)

// phraseResponse is the subset of the service response this client consumes.
// The upstream also returns the raw words and the template config; both are
// ignored here.
type phraseResponse struct {
	Phrase *string `json:"phrase"`
}

// HTTPSource fetches phrases from a randnd-style service over HTTP. The
// category is appended verbatim to the endpoint path, so callers must supply
// path-safe values.
type HTTPSource struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPSource builds a source for the given base endpoint. A nil client
// falls back to a client without a timeout: request lifetimes are bounded by
// the caller's context, or not at all.
func NewHTTPSource(endpoint string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPSource{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: client,
	}
}

// Endpoint implements ports.PhraseSource.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Fetch implements ports.PhraseSource. It issues GET <endpoint>/<category>
// and decodes the phrase field from the JSON body. A missing or wrong-typed
// field yields a *domain.DecodeError.
func (s *HTTPSource) Fetch(ctx context.Context, category string) (string, error) {
	url := s.endpoint + "/" + category
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("phrase service: %s: %s", category, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var decoded phraseResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &domain.DecodeError{Reason: "invalid JSON body", Err: err}
	}
	if decoded.Phrase == nil {
		return "", &domain.DecodeError{Reason: "missing phrase field"}
	}
	return *decoded.Phrase, nil
}

var _ ports.PhraseSource = (*HTTPSource)(nil)
