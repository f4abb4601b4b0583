package testutil

import (
	domaingames "kbo-games-service/internal/domain/games"
)

// SampleGame returns a minimal scheduled game with the provided id.
func SampleGame(id string) domaingames.Game {
	return domaingames.Game{
		ID:                id,
		Date:              Day(2024, 9, 19),
		StartTime:         "18:30",
		Stadium:           "잠실",
		HomeTeam:          "두산",
		AwayTeam:          "한화",
		Status:            domaingames.StatusScheduled,
		Score:             &domaingames.Score{Home: 0, Away: 0},
		BroadcastServices: []string{},
		Season:            2024,
	}
}
