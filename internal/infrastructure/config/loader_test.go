package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileLoader_FirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
	want := []string{"spell", "reaction", "miniboss", "boss", "bbeg"}
	if diff := cmp.Diff(want, cfg.Service.Categories); diff != "" {
		t.Errorf("default categories mismatch (-want +got):\n%s", diff)
	}
	if cfg.Service.Endpoint == "" {
		t.Error("default endpoint should not be empty")
	}
}

func TestFileLoader_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.Service.Endpoint = "http://phrases.internal:9000"
	cfg.Service.DefaultCategory = "boss"
	if err := loader.Write(cfg); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	loaded, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Service.Endpoint != "http://phrases.internal:9000" {
		t.Errorf("endpoint = %q, want written value", loaded.Service.Endpoint)
	}
	if loaded.Service.DefaultCategory != "boss" {
		t.Errorf("default category = %q, want boss", loaded.Service.DefaultCategory)
	}
}

func TestFileLoader_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	t.Setenv("RANDND_ENDPOINT", "http://override:1234")
	t.Setenv("RANDND_CATEGORIES", "spell,boss")

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Service.Endpoint != "http://override:1234" {
		t.Errorf("endpoint = %q, want env override", cfg.Service.Endpoint)
	}
	if diff := cmp.Diff([]string{"spell", "boss"}, cfg.Service.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoader_HydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("service:\n  default_category: reaction\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewFileLoader(path)
	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Service.Endpoint == "" {
		t.Error("endpoint should be hydrated with a default")
	}
	if len(cfg.Service.Categories) == 0 {
		t.Error("categories should be hydrated with defaults")
	}
	if cfg.Service.DefaultCategory != "reaction" {
		t.Errorf("default category = %q, want reaction", cfg.Service.DefaultCategory)
	}
	if cfg.Log.Backend != "sqlite" {
		t.Errorf("log backend = %q, want sqlite default", cfg.Log.Backend)
	}
}
