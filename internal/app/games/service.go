package games

import (
	"context"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/providers"
)

// Service answers game queries for a calendar day using a GameProvider.
type Service struct {
	provider providers.GameProvider
}

// NewService constructs a Service with the provided GameProvider.
func NewService(provider providers.GameProvider) *Service {
	return &Service{provider: provider}
}

// GetGames returns the games on date's calendar day in upstream order.
// A day without games yields (nil, nil); callers must check for nil rather
// than expect an empty slice. Provider errors are returned unchanged.
func (s *Service) GetGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	games, err := s.provider.FetchGames(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return games, nil
}
