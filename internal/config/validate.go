package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Web.validate(); err != nil {
		return fmt.Errorf("web: %w", err)
	}

	if c.RateLimit.CommandsPerMinute < 0 {
		return fmt.Errorf("rate_limit.commands_per_minute must be >= 0 (got %d)", c.RateLimit.CommandsPerMinute)
	}
	if c.RateLimit.CommandsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 {
		return fmt.Errorf("min_conns must be >= 0 (got %d)", d.MinConns)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (w *WebConfig) validate() error {
	u, err := url.Parse(w.PublicURL)
	if err != nil {
		return fmt.Errorf("public_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("public_url must be an absolute http(s) URL (got %q)", w.PublicURL)
	}
	w.PublicURL = strings.TrimRight(w.PublicURL, "/")
	return nil
}
