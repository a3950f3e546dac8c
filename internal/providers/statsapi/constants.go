package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	gameFinderPath     = "/leaguegamefinder"
	defaultHTTPTimeout = 30 * time.Second

	leagueID = "00"

	// Column names in the game finder result set.
	colGameID       = "GAME_ID"
	colGameDate     = "GAME_DATE"
	colMatchup      = "MATCHUP"
	colWinLoss      = "WL"
	colPoints       = "PTS"
	colPlusMinus    = "PLUS_MINUS"
	colAbbreviation = "TEAM_ABBREVIATION"
)

// Matchup text separators; the side left of the separator is the queried team.
const (
	sepAway = " @ "   // queried team plays on the road
	sepHome = " vs. " // queried team hosts
)
