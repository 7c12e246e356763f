package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/infrastructure/source"
)

func TestHTTPSource_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantPhrase string
		wantError  bool
		wantDecode bool
	}{
		{
			name:       "decodes phrase field",
			status:     http.StatusOK,
			body:       `{"phrase": "I cast Forgot Crossbow.", "words": ["Forgot", "Crossbow"]}`,
			wantPhrase: "I cast Forgot Crossbow.",
		},
		{
			name:      "non-200 status",
			status:    http.StatusInternalServerError,
			body:      `oops`,
			wantError: true,
		},
		{
			name:       "invalid JSON body",
			status:     http.StatusOK,
			body:       `not json at all`,
			wantError:  true,
			wantDecode: true,
		},
		{
			name:       "missing phrase field",
			status:     http.StatusOK,
			body:       `{"words": ["Ugh"]}`,
			wantError:  true,
			wantDecode: true,
		},
		{
			name:       "wrong-typed phrase field",
			status:     http.StatusOK,
			body:       `{"phrase": 42}`,
			wantError:  true,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			src := source.NewHTTPSource(srv.URL, srv.Client())
			phrase, err := src.Fetch(context.Background(), "spell")

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				var decodeErr *domain.DecodeError
				if got := errors.As(err, &decodeErr); got != tt.wantDecode {
					t.Errorf("decode error = %v, want %v (err: %v)", got, tt.wantDecode, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if phrase != tt.wantPhrase {
				t.Errorf("phrase = %q, want %q", phrase, tt.wantPhrase)
			}
		})
	}
}

func TestHTTPSource_CategoryInPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"phrase": "Whoa!"}`))
	}))
	defer srv.Close()

	// trailing slash on the endpoint must not double up in the request path
	src := source.NewHTTPSource(srv.URL+"/", srv.Client())
	if _, err := src.Fetch(context.Background(), "reaction"); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if gotPath != "/reaction" {
		t.Errorf("request path = %q, want /reaction", gotPath)
	}
}

func TestHTTPSource_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	src := source.NewHTTPSource(srv.URL, srv.Client())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Fetch(ctx, "spell"); err == nil {
		t.Error("expected error from cancelled context")
	}
}
