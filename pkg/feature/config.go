package feature

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Saastronomical/flagkit/pkg/audit"
)

// Config holds engine settings sourced from the process environment.
// Flag-level FF_* overrides are separate; see ApplyEnv.
type Config struct {
	// ConfigFile is an optional JSON or YAML flag document merged over
	// the defaults at construction.
	ConfigFile string `env:"FEATURE_FLAGS_CONFIG"`

	// AuditCapacity bounds the evaluation history ring buffer.
	AuditCapacity int `env:"FEATURE_FLAGS_AUDIT_CAPACITY" envDefault:"1000"`

	// EnvOverrides controls whether FF_* variables are applied after
	// defaults and file config.
	EnvOverrides bool `env:"FEATURE_FLAGS_ENV_OVERRIDES" envDefault:"true"`
}

// LoadConfig reads engine settings from the environment, loading a local
// .env file first when present.
func LoadConfig() (Config, error) {
	// The .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrConfigLoad, err)
	}
	return cfg, nil
}

// NewFromConfig builds a registry from engine settings: defaults, then
// the optional config file, then FF_* environment overrides. File load
// failures are logged and do not abort construction.
func NewFromConfig(cfg Config, opts ...Option) *Registry {
	recorder := audit.NewRecorder(audit.WithCapacity(cfg.AuditCapacity))
	r := NewRegistry(append([]Option{WithRecorder(recorder)}, opts...)...)

	if cfg.ConfigFile != "" {
		_ = r.LoadFile(cfg.ConfigFile) // fail-open, logged inside
	}
	if cfg.EnvOverrides {
		r.LoadEnv()
	}
	return r
}
