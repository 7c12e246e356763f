package domain_test

import (
	"testing"
	"time"

	"github.com/backwardspy/randnd/internal/domain"
)

// TestConfig_ResolveCategory tests category resolution precedence
func TestConfig_ResolveCategory(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		override  string
		wantError bool
		want      string
	}{
		{
			name: "override wins over default",
			config: domain.Config{
				Service: domain.ServiceSettings{
					Categories:      []string{"spell", "boss"},
					DefaultCategory: "spell",
				},
			},
			override: "boss",
			want:     "boss",
		},
		{
			name: "unknown override passes through verbatim",
			config: domain.Config{
				Service: domain.ServiceSettings{
					Categories:      []string{"spell"},
					DefaultCategory: "spell",
				},
			},
			override: "mystery",
			want:     "mystery",
		},
		{
			name: "falls back to configured default",
			config: domain.Config{
				Service: domain.ServiceSettings{
					Categories:      []string{"spell", "boss"},
					DefaultCategory: "boss",
				},
			},
			want: "boss",
		},
		{
			name: "falls back to first category without default",
			config: domain.Config{
				Service: domain.ServiceSettings{
					Categories: []string{"reaction", "boss"},
				},
			},
			want: "reaction",
		},
		{
			name:      "errors with nothing configured",
			config:    domain.Config{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.config.ResolveCategory(tt.override)

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if got != tt.want {
				t.Errorf("got category %s, want %s", got, tt.want)
			}
		})
	}
}

// TestConfig_AddCategory tests adding a new category
func TestConfig_AddCategory(t *testing.T) {
	cfg := domain.Config{
		Service: domain.ServiceSettings{Categories: []string{"spell"}},
	}

	if err := cfg.AddCategory("boss"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.HasCategory("boss") {
		t.Error("boss should exist after AddCategory")
	}

	if err := cfg.AddCategory("spell"); err == nil {
		t.Error("expected error adding duplicate category")
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := domain.Config{
		Service: domain.ServiceSettings{TimeoutSeconds: 5},
		Feed:    domain.FeedSettings{TickSeconds: 10},
	}

	if got := cfg.FetchTimeout(); got != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", got)
	}
	if got := cfg.TickInterval(); got != 10*time.Second {
		t.Errorf("TickInterval = %v, want 10s", got)
	}

	zero := domain.Config{}
	if got := zero.FetchTimeout(); got != 0 {
		t.Errorf("zero FetchTimeout = %v, want 0 (no timeout)", got)
	}
	if got := zero.TickInterval(); got != domain.DefaultTickInterval {
		t.Errorf("zero TickInterval = %v, want default %v", got, domain.DefaultTickInterval)
	}
}
