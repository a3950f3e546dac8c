package domain

import (
	"fmt"
	"strings"
	"time"
)

// SeasonType classifies which part of the season a game belongs to.
type SeasonType string

const (
	SeasonTypePreseason SeasonType = "Pre Season"
	SeasonTypeRegular   SeasonType = "Regular Season"
	SeasonTypePlayIn    SeasonType = "Play-In"
	SeasonTypePlayoffs  SeasonType = "Playoffs"
)

// Game is the canonical game shape produced by the schedule providers.
// Instances are built once per fetch and never mutated afterwards.
type Game struct {
	ID             string
	Date           time.Time
	HomeTeamID     int
	HomeTeamAbbrev string
	HomeTeamName   string
	AwayTeamID     int
	AwayTeamAbbrev string
	AwayTeamName   string
	HomeScore      *int
	AwayScore      *int
	Arena          string
	ArenaCity      string
	ArenaState     string
	Completed      bool
	Season         string
	SeasonType     SeasonType
}

// Matchup renders the short away-at-home form, e.g. "BOS @ NYK".
func (g Game) Matchup() string {
	return fmt.Sprintf("%s @ %s", g.AwayTeamAbbrev, g.HomeTeamAbbrev)
}

// MatchupFull renders the away-at-home form with full team names.
func (g Game) MatchupFull() string {
	return fmt.Sprintf("%s @ %s", g.AwayTeamName, g.HomeTeamName)
}

// ScoreLine renders the final score, away side first. Empty until both scores exist.
func (g Game) ScoreLine() string {
	if g.HomeScore == nil || g.AwayScore == nil {
		return ""
	}
	return fmt.Sprintf("%s %d - %d %s", g.AwayTeamAbbrev, *g.AwayScore, *g.HomeScore, g.HomeTeamAbbrev)
}

// Location joins arena and city/state into a display string.
func (g Game) Location() string {
	parts := make([]string, 0, 2)
	if g.Arena != "" {
		parts = append(parts, g.Arena)
	}
	if g.ArenaCity != "" {
		cityState := g.ArenaCity
		if g.ArenaState != "" {
			cityState += ", " + g.ArenaState
		}
		parts = append(parts, cityState)
	}
	return strings.Join(parts, ", ")
}

// InvolvesTeam reports whether either side matches the abbreviation (case-insensitive).
func (g Game) InvolvesTeam(abbrev string) bool {
	code := strings.ToUpper(abbrev)
	return g.HomeTeamAbbrev == code || g.AwayTeamAbbrev == code
}

// InvolvesTeamID reports whether either side matches the numeric team id.
func (g Game) InvolvesTeamID(id int) bool {
	return g.HomeTeamID == id || g.AwayTeamID == id
}
