package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/logging"
	"kbo-games-service/internal/metrics"
	"kbo-games-service/internal/timeutil"
)

// instrumentedProvider records latency and outcome of every upstream call.
// Each FetchGames call reaches the inner provider exactly once.
type instrumentedProvider struct {
	inner        GameProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and logging.
func NewInstrumentedProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) GameProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	games, err := p.inner.FetchGames(ctx, date)
	elapsed := p.now().Sub(start)

	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.providerName, elapsed, len(games), err)
	}

	day := timeutil.FormatCompactDate(date)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider fetch failed",
			slog.String(logging.FieldDate, day),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "provider fetch complete",
		slog.String(logging.FieldDate, day),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return games, nil
}

// Provider exposes the wrapped provider.
func (p *instrumentedProvider) Provider() GameProvider {
	return p.inner
}
