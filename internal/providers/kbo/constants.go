package kbo

import "time"

const (
	providerName = "kbo"

	defaultBaseURL     = "https://www.koreabaseball.com"
	gameListPath       = "/ws/Main.asmx/GetKboGameList"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512

	// The endpoint only answers requests that look like they came from its own site.
	upstreamOrigin  = "https://www.koreabaseball.com"
	upstreamReferer = "https://www.koreabaseball.com/"
	formContentType = "application/x-www-form-urlencoded; charset=UTF-8"
)

const (
	// LeagueKBO is the upstream league id of the KBO league.
	LeagueKBO = 1
	// AllSeriesIDs covers exhibition, regular season and every postseason round.
	AllSeriesIDs = "0,1,3,4,5,6,7,8,9"
)
