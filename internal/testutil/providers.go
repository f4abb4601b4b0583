package testutil

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	Games []domaingames.Game
	Err   error
	Calls atomic.Int32

	mu       sync.Mutex
	lastDate time.Time
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.lastDate = date
	s.mu.Unlock()
	return s.Games, s.Err
}

// LastDate returns the date passed to the most recent FetchGames call.
func (s *StubProvider) LastDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDate
}
