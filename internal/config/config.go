package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Sports   SportsConfig   `yaml:"sports"`
	Digest   DigestConfig   `yaml:"digest"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	LoginRatePerMin int           `yaml:"login_rate_per_min" env:"SERVER_LOGIN_RATE_PER_MIN" env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectAttempts uint          `yaml:"connect_attempts"   env:"DATABASE_CONNECT_ATTEMPTS"   env-default:"5"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	SecretKey             string `yaml:"secret_key"               env:"SECRET_KEY"                  env-required:"true"`
	Algorithm             string `yaml:"algorithm"                env:"ALGORITHM"                   env-default:"HS256"`
	AccessTokenExpireMins int    `yaml:"access_token_expire_mins" env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"60"`
	Issuer                string `yaml:"issuer"                   env:"AUTH_ISSUER"                 env-default:"suite-seo"`
}

// AccessTokenTTL returns the configured token lifetime.
func (c AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMins) * time.Minute
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	Origins        string `yaml:"origins"         env:"CORS_ORIGINS"         env-default:""`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Authorization,Content-Type,X-Api-Key"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// OriginList splits Origins on commas, dropping blanks.
func (c CORSConfig) OriginList() []string {
	return splitList(c.Origins)
}

// AllowCredentials is false when the allow-list contains the wildcard.
func (c CORSConfig) AllowCredentials() bool {
	for _, o := range c.OriginList() {
		if o == "*" {
			return false
		}
	}
	return true
}

// SMTPConfig holds outbound mail settings. An empty Host disables sending.
type SMTPConfig struct {
	Host       string        `yaml:"host"        env:"SMTP_HOST"        env-default:""`
	Port       int           `yaml:"port"        env:"SMTP_PORT"        env-default:"587"`
	User       string        `yaml:"user"        env:"SMTP_USER"        env-default:""`
	Password   string        `yaml:"password"    env:"SMTP_PASSWORD"    env-default:""`
	From       string        `yaml:"from"        env:"SMTP_FROM"        env-default:""`
	AuthDomain string        `yaml:"auth_domain" env:"SMTP_AUTH_DOMAIN" env-default:""`
	Timeout    time.Duration `yaml:"timeout"     env:"SMTP_TIMEOUT"     env-default:"15s"`
}

// Enabled reports whether a mail relay is configured.
func (c SMTPConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

// SportsConfig holds the shared secret used by the sports feed scheduler.
type SportsConfig struct {
	APIKey string `yaml:"api_key" env:"SPORTS_API_KEY" env-default:""`
}

// DigestConfig holds defaults for the daily topics digest.
type DigestConfig struct {
	Recipients    string `yaml:"recipients"     env:"DIGEST_RECIPIENTS"     env-default:"contenidos.seo@prensaiberica.es,seo@prensaiberica.es"`
	SubjectPrefix string `yaml:"subject_prefix" env:"DIGEST_SUBJECT_PREFIX" env-default:"Temas del día SEO"`
	Timezone      string `yaml:"timezone"       env:"DIGEST_TIMEZONE"       env-default:"Europe/Madrid"`
}

// RecipientList splits Recipients on commas, dropping blanks.
func (c DigestConfig) RecipientList() []string {
	return splitList(c.Recipients)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
