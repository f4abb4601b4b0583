package fixture

import (
	"context"
	"time"

	domaingames "kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/timeutil"
)

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns two scheduled games on date's calendar day.
// A zero date falls back to the provider's clock.
func (p *Provider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	_ = ctx

	if date.IsZero() {
		date = p.now()
	}
	day := timeutil.FormatCompactDate(date)
	calendarDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	return []domaingames.Game{
		{
			ID:                day + "HHOB0",
			Date:              calendarDay,
			StartTime:         "18:30",
			Stadium:           "잠실",
			HomeTeam:          "두산",
			AwayTeam:          "한화",
			Status:            domaingames.StatusScheduled,
			Score:             &domaingames.Score{Home: 0, Away: 0},
			BroadcastServices: []string{"SBS Sports"},
			Season:            date.Year(),
		},
		{
			ID:                day + "LGKT0",
			Date:              calendarDay,
			StartTime:         "18:30",
			Stadium:           "수원",
			HomeTeam:          "KT",
			AwayTeam:          "LG",
			Status:            domaingames.StatusScheduled,
			Score:             &domaingames.Score{Home: 0, Away: 0},
			BroadcastServices: []string{"KBS N", "SPOTV"},
			Season:            date.Year(),
		},
	}, nil
}
