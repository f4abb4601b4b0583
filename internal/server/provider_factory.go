package server

import (
	"log/slog"

	"kbo-games-service/internal/config"
	"kbo-games-service/internal/metrics"
	"kbo-games-service/internal/providers"
	"kbo-games-service/internal/providers/fixture"
	"kbo-games-service/internal/providers/kbo"
)

// providerFactory assembles the configured provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	name, base := selectProvider(cfg, f.logger)
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}

func selectProvider(cfg config.Config, logger *slog.Logger) (string, providers.GameProvider) {
	switch cfg.Provider {
	case config.ProviderFixture:
		return config.ProviderFixture, fixture.New()
	case config.ProviderKBO, "":
		return config.ProviderKBO, kbo.NewClient(kbo.Config{
			BaseURL: cfg.KBO.BaseURL,
			Timeout: cfg.KBO.HTTPTimeout,
			Strict:  cfg.KBO.StrictSchema,
			Logger:  logger,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to kbo", slog.String("provider", cfg.Provider))
		}
		return config.ProviderKBO, kbo.NewClient(kbo.Config{Logger: logger})
	}
}
