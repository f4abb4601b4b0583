package config

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderKBO     = "kbo"
	ProviderFixture = "fixture"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string        `envconfig:"PORT" default:"4000"`
	Provider string        `envconfig:"PROVIDER" default:"kbo"`
	Timezone string        `envconfig:"TIMEZONE" default:"Asia/Seoul"`
	KBO      KBOConfig     `envconfig:"KBO"`
	Metrics  MetricsConfig `envconfig:"METRICS"`
	Log      LogConfig     `envconfig:"LOG"`
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level  string `default:"info"`
	Format string `default:"json"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, crerr.Wrap(err, "config: process env")
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Provider {
	case ProviderKBO, ProviderFixture:
	default:
		return crerr.Newf("config: unknown provider %q", c.Provider)
	}
	if c.Metrics.Enabled && c.Metrics.Port == c.Port {
		return crerr.Newf("config: METRICS_PORT %s collides with PORT", c.Metrics.Port)
	}
	if c.KBO.HTTPTimeout <= 0 {
		return crerr.Newf("config: KBO_HTTP_TIMEOUT must be positive, got %s", c.KBO.HTTPTimeout)
	}
	return nil
}
