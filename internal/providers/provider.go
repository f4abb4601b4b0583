package providers

import (
	"context"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
)

// GameProvider defines how upstream game data is fetched and normalized.
// The date's own calendar fields (year, month, day in its location) select the day.
// Implementations return games in upstream order and an empty slice when the day has none.
type GameProvider interface {
	FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error)
}

// GameProviderFunc adapts a function to GameProvider.
type GameProviderFunc func(ctx context.Context, date time.Time) ([]domaingames.Game, error)

// FetchGames calls f.
func (f GameProviderFunc) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	return f(ctx, date)
}
