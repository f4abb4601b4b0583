package kbo

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"kbo-games-service/internal/domain/games"
	"kbo-games-service/internal/timeutil"
)

func mapRawGame(raw RawGame) games.Game {
	return games.Game{
		ID:                raw.GameID,
		Date:              parseGameDate(raw.GameDate),
		StartTime:         raw.GameTime,
		Stadium:           raw.Stadium,
		HomeTeam:          raw.HomeName,
		AwayTeam:          raw.AwayName,
		HomePitcher:       raw.HomePitcher,
		AwayPitcher:       raw.AwayPitcher,
		WinPitcher:        raw.WinPitcher,
		LosePitcher:       raw.LosePitcher,
		SavePitcher:       raw.SavePitcher,
		Status:            mapStatus(raw.StateCode),
		Score:             mapScore(raw.HomeScore, raw.AwayScore),
		CurrentInning:     copyInning(raw.Inning),
		BroadcastServices: splitBroadcasts(raw.TVInfo),
		Season:            raw.SeasonID,
	}
}

// mapStatus treats unknown state codes as scheduled.
func mapStatus(code string) games.GameStatus {
	switch code {
	case "1":
		return games.StatusScheduled
	case "2":
		return games.StatusInProgress
	case "3":
		return games.StatusCompleted
	case "4":
		return games.StatusCancelled
	default:
		return games.StatusScheduled
	}
}

// parseGameDate returns the zero time when raw is not a YYYYMMDD date.
func parseGameDate(raw string) time.Time {
	parsed, err := timeutil.ParseCompactDate(raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func mapScore(home, away *string) *games.Score {
	if home == nil && away == nil {
		return nil
	}
	return &games.Score{
		Home: parseScore(home),
		Away: parseScore(away),
	}
}

// parseScore reads the leading base-10 integer of raw, skipping leading
// whitespace. Anything without leading digits yields games.UnparsedScore.
func parseScore(raw *string) int {
	if raw == nil {
		return games.UnparsedScore
	}
	s := strings.TrimLeftFunc(*raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return games.UnparsedScore
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return games.UnparsedScore
	}
	return value
}

func copyInning(raw *int) *int {
	if raw == nil {
		return nil
	}
	inning := *raw
	return &inning
}

func splitBroadcasts(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}
