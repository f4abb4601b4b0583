package games

import "time"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusCompleted  GameStatus = "COMPLETED"
	StatusCancelled  GameStatus = "CANCELLED"
)

// UnparsedScore marks a score side whose upstream value was not a number.
const UnparsedScore = -1

// Score captures home and away runs.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Parsed reports whether both sides came from numeric upstream values.
func (s Score) Parsed() bool {
	return s.Home != UnparsedScore && s.Away != UnparsedScore
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	Stadium   string    `json:"stadium"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`

	// Starting pitchers; empty until announced.
	HomePitcher string `json:"homePitcher,omitempty"`
	AwayPitcher string `json:"awayPitcher,omitempty"`

	// Decision pitchers, filled once the game is over.
	WinPitcher  string `json:"winPitcher,omitempty"`
	LosePitcher string `json:"losePitcher,omitempty"`
	SavePitcher string `json:"savePitcher,omitempty"`

	Status            GameStatus `json:"status"`
	Score             *Score     `json:"score,omitempty"`
	CurrentInning     *int       `json:"currentInning,omitempty"`
	BroadcastServices []string   `json:"broadcastServices"`
	Season            int        `json:"season"`
}

// DayResponse is the payload returned by /games?date=YYYY-MM-DD.
type DayResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewDayResponse builds a DayResponse payload.
func NewDayResponse(date string, games []Game) DayResponse {
	return DayResponse{
		Date:  date,
		Games: games,
	}
}
