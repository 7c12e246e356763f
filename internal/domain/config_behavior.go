package domain

import (
	"fmt"
	"time"
)

// HasCategory checks whether the configuration lists the given category.
func (c *Config) HasCategory(name string) bool {
	for _, cat := range c.Service.Categories {
		if cat == name {
			return true
		}
	}
	return false
}

// ResolveCategory picks the category to fetch: the override if non-empty,
// otherwise the configured default, otherwise the first configured category.
// Unknown overrides are passed through verbatim so callers can query
// categories the local config does not list yet.
func (c *Config) ResolveCategory(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.Service.DefaultCategory != "" {
		return c.Service.DefaultCategory, nil
	}
	if len(c.Service.Categories) > 0 {
		return c.Service.Categories[0], nil
	}
	return "", fmt.Errorf("no category given and none configured")
}

// AddCategory appends a category to the configuration.
// Returns an error if the category already exists.
func (c *Config) AddCategory(name string) error {
	if c.HasCategory(name) {
		return fmt.Errorf("category %s already exists", name)
	}
	c.Service.Categories = append(c.Service.Categories, name)
	return nil
}

// FetchTimeout converts the configured timeout to a duration. Zero means no
// timeout.
func (c *Config) FetchTimeout() time.Duration {
	if c.Service.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}

// TickInterval converts the configured watch tick to a duration, falling back
// to the default when unset.
func (c *Config) TickInterval() time.Duration {
	if c.Feed.TickSeconds <= 0 {
		return DefaultTickInterval
	}
	return time.Duration(c.Feed.TickSeconds) * time.Second
}
