package domain

// Config mirrors ~/.randnd/config.yaml. Fields tagged with env can be
// overridden through the environment after the file is loaded.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Service             ServiceSettings `yaml:"service"`
	Feed                FeedSettings    `yaml:"feed"`
	Log                 LogSettings     `yaml:"log"`
}

// ServiceSettings describes the remote phrase service.
type ServiceSettings struct {
	Endpoint        string   `yaml:"endpoint" env:"RANDND_ENDPOINT"`
	Categories      []string `yaml:"categories" env:"RANDND_CATEGORIES" envSeparator:","`
	DefaultCategory string   `yaml:"default_category" env:"RANDND_DEFAULT_CATEGORY"`
	// TimeoutSeconds bounds a single fetch. Zero means no timeout: a request
	// that never completes simply never appends.
	TimeoutSeconds int `yaml:"timeout" env:"RANDND_TIMEOUT"`
}

// FeedSettings captures feed presentation toggles.
type FeedSettings struct {
	// TickSeconds is the watch view auto-regenerate interval.
	TickSeconds int `yaml:"tick" env:"RANDND_TICK"`
}

// LogSettings controls the persistent feed log.
type LogSettings struct {
	Enabled       bool   `yaml:"enabled" env:"RANDND_LOG_ENABLED"`
	Backend       string `yaml:"backend" env:"RANDND_LOG_BACKEND"`
	RetentionDays int    `yaml:"retention_days" env:"RANDND_LOG_RETENTION_DAYS"`
}
