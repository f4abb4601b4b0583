package kbo

// GameListParams are the form fields of a GetKboGameList request.
type GameListParams struct {
	LeagueID  int
	SeriesIDs string
	Date      string // YYYYMMDD
}

// GameListResponse is the upstream JSON envelope, returned as decoded.
type GameListResponse struct {
	Game []RawGame `json:"game"`
	Code string    `json:"code"`
	Msg  string    `json:"msg"`
}

// RawGame lists the upstream record fields the mapper consumes; the rest of
// the payload is ignored. Validation tags only apply in strict mode.
type RawGame struct {
	GameID      string  `json:"G_ID" validate:"required"`
	GameDate    string  `json:"G_DT" validate:"required,len=8,numeric"`
	GameTime    string  `json:"G_TM"`
	Stadium     string  `json:"S_NM"`
	HomeName    string  `json:"HOME_NM" validate:"required"`
	AwayName    string  `json:"AWAY_NM" validate:"required"`
	HomePitcher string  `json:"B_PIT_P_NM"`
	AwayPitcher string  `json:"T_PIT_P_NM"`
	WinPitcher  string  `json:"W_PIT_P_NM"`
	LosePitcher string  `json:"L_PIT_P_NM"`
	SavePitcher string  `json:"SV_PIT_P_NM"`
	StateCode   string  `json:"GAME_STATE_SC" validate:"required"`
	HomeScore   *string `json:"B_SCORE_CN"`
	AwayScore   *string `json:"T_SCORE_CN"`
	Inning      *int    `json:"GAME_INN_NO"`
	TVInfo      string  `json:"TV_IF"`
	SeasonID    int     `json:"SEASON_ID"`
}
