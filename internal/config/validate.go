package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Auth.validate(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.LoginRatePerMin <= 0 {
		errs = append(errs, fmt.Errorf("server.login_rate_per_min must be positive (got %d)", c.Server.LoginRatePerMin))
	}
	if err := c.Database.validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if c.SMTP.Enabled() && (c.SMTP.Port <= 0 || c.SMTP.Port > 65535) {
		errs = append(errs, fmt.Errorf("smtp.port must be in 1..65535 (got %d)", c.SMTP.Port))
	}
	if _, err := time.LoadLocation(c.Digest.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("digest.timezone: %w", err))
	}
	if err := c.Log.validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if len(a.SecretKey) < 32 {
		return fmt.Errorf("secret_key must be at least 32 characters (got %d)", len(a.SecretKey))
	}
	if a.Algorithm != "HS256" {
		return fmt.Errorf("algorithm %q is not supported (only HS256)", a.Algorithm)
	}
	if a.AccessTokenExpireMins <= 0 {
		return fmt.Errorf("access_token_expire_mins must be > 0 (got %d)", a.AccessTokenExpireMins)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	if d.ConnectAttempts == 0 {
		return fmt.Errorf("connect_attempts must be > 0")
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}
