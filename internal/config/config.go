package config // package config loads application configuration from environment variables

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// WildcardOrigin allows any origin when no explicit origins are configured.
const WildcardOrigin = "*"

// Config holds all runtime configuration values.  It is resolved once at
// process start and passed by value to the components that need it; nothing
// reads the environment after Load returns.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"dev"` // application environment (dev/test/prod)
	Port int    `env:"PORT" envDefault:"8000"`   // HTTP port to listen on

	// RawOrigins is the comma separated CORS_ORIGINS value as read from the
	// environment.  Use CORSOrigins for the resolved set.
	RawOrigins  string `env:"CORS_ORIGINS"`
	CORSOrigins []string

	Cache   CacheConfig
	Redis   RedisConfig
	Metrics MetricsConfig
}

// MetricsConfig toggles the Prometheus collectors and the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load reads an optional .env file from the working directory and then the
// process environment.  Values already present in the environment win over
// the .env file.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d: must be between 1 and 65535", cfg.Port)
	}
	cfg.CORSOrigins = ParseOrigins(cfg.RawOrigins)
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// ParseOrigins splits a comma separated origin list, trims whitespace around
// each entry and drops empty entries.  An empty result becomes the single
// wildcard origin.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{WildcardOrigin}
	}
	return origins
}

// Addr is the listen address, bound to all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsDev reports whether the service runs in a development environment.
// It only raises the log level.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.Env) {
	case "dev", "development", "local":
		return true
	}
	return false
}
