package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"

	"github.com/backwardspy/randnd/internal/domain"
	"github.com/backwardspy/randnd/internal/ports"
)

// FileLoader loads YAML configuration from ~/.randnd/config.yaml (overridable
// via RANDND_CONFIG), then applies RANDND_* environment overrides on top.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := l.Write(cfg); err != nil {
				return domain.Config{}, err
			}
			return applyEnv(cfg)
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return applyEnv(hydrateDefaults(cfg))
}

// Write persists the configuration back to the resolved path.
func (l *FileLoader) Write(cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("RANDND_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".randnd", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

// DefaultConfig is the configuration written on first run. The categories
// match the phrase service routes this client was built against.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Service: domain.ServiceSettings{
			Endpoint:        "http://localhost:8000",
			Categories:      []string{"spell", "reaction", "miniboss", "boss", "bbeg"},
			DefaultCategory: "spell",
			TimeoutSeconds:  0,
		},
		Feed: domain.FeedSettings{
			TickSeconds: 30,
		},
		Log: domain.LogSettings{
			Enabled:       true,
			Backend:       "sqlite",
			RetentionDays: domain.DefaultLogRetainDays,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Service.Endpoint == "" {
		cfg.Service.Endpoint = "http://localhost:8000"
	}
	if len(cfg.Service.Categories) == 0 {
		cfg.Service.Categories = DefaultConfig().Service.Categories
	}
	if cfg.Log.Backend == "" {
		cfg.Log.Backend = "sqlite"
	}
	return cfg
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("apply env overrides: %w", err)
	}
	return cfg, nil
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
