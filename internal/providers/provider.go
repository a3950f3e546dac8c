// Package providers defines the contracts for upstream schedule sources and
// the decorators (retry, pacing) composed around them.
package providers

import (
	"context"

	"nba-cal/internal/domain"
)

// Dropped describes one raw record that could not be normalized into a Game.
type Dropped struct {
	Provider string
	GameID   string
	Reason   string
}

// Batch is the outcome of one upstream call: the games that parsed plus a
// diagnostic entry for every record that was skipped. Callers can inspect
// what was dropped without relying on logs.
type Batch struct {
	Games   []domain.Game
	Dropped []Dropped
}

// BulkScheduleProvider fetches a whole season's schedule in one call.
type BulkScheduleProvider interface {
	FetchSeason(ctx context.Context, season string) (Batch, error)
}

// TeamLogProvider fetches the game log for one team and season type.
// The upstream query grain is team-scoped, so a full fetch issues one call
// per (team, season type) pair.
type TeamLogProvider interface {
	FetchTeamGames(ctx context.Context, season string, teamID int, seasonType domain.SeasonType) (Batch, error)
}
