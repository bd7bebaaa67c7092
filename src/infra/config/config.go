// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Server and log values use the prefix "APP" (APP_PORT, APP_LOG_LEVEL).
// Database values are unprefixed (DATABASE_URL, DB_HOST, ...).
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration, resolved once at startup for logging only.
	// The connection factory re-resolves it on every connection attempt.
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// StaticDir holds index.html and the assets served under /static (default: static)
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// When URL is non-empty it wins and the discrete fields are ignored.
// No field is validated here; bad values surface when connecting.
type DatabaseConfig struct {
	URL      string `envconfig:"DATABASE_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Name     string `envconfig:"DB_NAME" default:"project"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Port     string `envconfig:"DB_PORT" default:"5432"`

	// SSLMode is appended to the discrete connection string when set.
	SSLMode string `envconfig:"DB_SSLMODE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// UsesURL reports whether DATABASE_URL drives the connection.
func (c DatabaseConfig) UsesURL() bool {
	return c.URL != ""
}

// Target describes what a connection attempt points at, for diagnostics.
func (c DatabaseConfig) Target() string {
	if c.UsesURL() {
		return c.URL
	}
	return fmt.Sprintf("%s (host=%s port=%s)", c.Name, c.Host, c.Port)
}

// LogTarget is Target with any DATABASE_URL password masked.
func (c DatabaseConfig) LogTarget() string {
	if !c.UsesURL() {
		return c.Target()
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return c.URL
	}
	return u.Redacted()
}

// UsesSocket reports whether Host names a Unix socket directory.
func (c DatabaseConfig) UsesSocket() bool {
	return strings.HasPrefix(c.Host, "/")
}

// ConnString returns the string handed to the driver: DATABASE_URL verbatim,
// or a postgres:// URL assembled from the DB_* fields. A socket directory
// host travels in the host query parameter since it cannot sit in the URL
// authority.
func (c DatabaseConfig) ConnString() string {
	if c.UsesURL() {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Path:   "/" + c.Name,
	}
	query := url.Values{}
	if c.UsesSocket() {
		query.Set("host", c.Host)
		query.Set("port", c.Port)
	} else {
		u.Host = net.JoinHostPort(c.Host, c.Port)
	}
	if c.SSLMode != "" {
		query.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadDatabase resolves the database settings from the current environment.
// It has no side effects and is cheap enough to call per connection.
func LoadDatabase() (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DatabaseConfig{}, fmt.Errorf("failed to load database config: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from environment variables.
// It returns an error if variables are present but cannot be parsed.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}
	cfg.Database = db

	return &cfg, nil
}
