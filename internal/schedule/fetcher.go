// Package schedule merges upstream schedule sources into one deduplicated,
// date-ordered list of games for a season.
package schedule

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"nba-cal/internal/domain"
	"nba-cal/internal/logging"
	"nba-cal/internal/metrics"
	"nba-cal/internal/providers"
)

// Options selects what a season fetch covers.
type Options struct {
	// TeamIDs limits the result to games involving these teams. Empty means
	// no filter; the distinction between "track nothing" and "track
	// everything" belongs to the caller.
	TeamIDs          []int
	IncludePreseason bool
	IncludePlayoffs  bool
}

// SubQueryFailure records one failed per-(team, season type) call.
type SubQueryFailure struct {
	TeamID     int
	SeasonType domain.SeasonType
	Err        error
}

// Result is the outcome of one season fetch: accepted games plus diagnostics
// for everything that was skipped along the way.
type Result struct {
	Games    []domain.Game
	Dropped  []providers.Dropped
	Failures []SubQueryFailure
}

// Fetcher coordinates the bulk schedule feed and the per-team game-log feed.
type Fetcher struct {
	bulk     providers.BulkScheduleProvider
	teamLog  providers.TeamLogProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewFetcher builds a fetcher. teamLog may be nil; the fetcher then always
// takes the bulk path and post-filters.
func NewFetcher(bulk providers.BulkScheduleProvider, teamLog providers.TeamLogProvider, logger *slog.Logger, recorder *metrics.Recorder) *Fetcher {
	return &Fetcher{bulk: bulk, teamLog: teamLog, logger: logger, recorder: recorder}
}

// FetchSeason returns the season's games, deduplicated by game id and sorted
// ascending by date. With a team filter and a configured team-log provider it
// issues one sub-query per (team, season type); failures there are isolated
// into Result.Failures. Otherwise it makes one bulk call, whose transport
// failure is the only error this method propagates.
func (f *Fetcher) FetchSeason(ctx context.Context, season string, opts Options) (Result, error) {
	included := includedSeasonTypes(opts)

	if len(opts.TeamIDs) > 0 && f.teamLog != nil {
		return f.fetchPerTeam(ctx, season, opts.TeamIDs, included), nil
	}
	return f.fetchBulk(ctx, season, opts.TeamIDs, included)
}

func (f *Fetcher) fetchBulk(ctx context.Context, season string, teamIDs []int, included map[domain.SeasonType]bool) (Result, error) {
	start := time.Now()
	batch, err := f.bulk.FetchSeason(ctx, season)
	f.recorder.RecordProviderAttempt("bulk", time.Since(start), err)
	if err != nil {
		logging.Error(f.logger, "bulk schedule fetch failed", err, logging.FieldSeason, season)
		return Result{}, err
	}
	f.logDropped(batch.Dropped)
	f.recorder.RecordDroppedRecords("bulk", len(batch.Dropped))

	filter := idSet(teamIDs)
	var games []domain.Game
	for _, g := range batch.Games {
		if !included[g.SeasonType] {
			continue
		}
		if len(filter) > 0 && !inFilter(g, filter) {
			continue
		}
		games = append(games, g)
	}

	result := Result{Games: dedupeAndSort(games), Dropped: batch.Dropped}
	logging.Info(f.logger, "season schedule fetched",
		logging.FieldSeason, season, logging.FieldCount, len(result.Games))
	return result, nil
}

func (f *Fetcher) fetchPerTeam(ctx context.Context, season string, teamIDs []int, included map[domain.SeasonType]bool) Result {
	var result Result
	var games []domain.Game

	for _, teamID := range teamIDs {
		for _, st := range seasonTypeOrder {
			if !included[st] {
				continue
			}

			start := time.Now()
			batch, err := f.teamLog.FetchTeamGames(ctx, season, teamID, st)
			f.recorder.RecordProviderAttempt("team-log", time.Since(start), err)
			if err != nil {
				if rl, ok := providers.AsRateLimitError(err); ok {
					f.recorder.RecordRateLimit("team-log", rl.RetryAfter)
				}
				logging.Warn(f.logger, "team game log fetch failed",
					logging.FieldTeamID, teamID, logging.FieldSeasonType, string(st), "error", err)
				result.Failures = append(result.Failures, SubQueryFailure{TeamID: teamID, SeasonType: st, Err: err})
				continue
			}

			f.logDropped(batch.Dropped)
			f.recorder.RecordDroppedRecords("team-log", len(batch.Dropped))
			result.Dropped = append(result.Dropped, batch.Dropped...)
			games = append(games, batch.Games...)
		}
	}

	result.Games = dedupeAndSort(games)
	logging.Info(f.logger, "season schedule fetched",
		logging.FieldSeason, season, logging.FieldCount, len(result.Games),
		"sub_query_failures", len(result.Failures))
	return result
}

func (f *Fetcher) logDropped(dropped []providers.Dropped) {
	for _, d := range dropped {
		logging.Warn(f.logger, "dropped unparseable game record",
			logging.FieldProvider, d.Provider, logging.FieldGameID, d.GameID, logging.FieldReason, d.Reason)
	}
}

// seasonTypeOrder fixes the sub-query order so fetches are deterministic.
var seasonTypeOrder = []domain.SeasonType{
	domain.SeasonTypePreseason,
	domain.SeasonTypeRegular,
	domain.SeasonTypePlayIn,
	domain.SeasonTypePlayoffs,
}

func includedSeasonTypes(opts Options) map[domain.SeasonType]bool {
	included := map[domain.SeasonType]bool{domain.SeasonTypeRegular: true}
	if opts.IncludePreseason {
		included[domain.SeasonTypePreseason] = true
	}
	if opts.IncludePlayoffs {
		included[domain.SeasonTypePlayIn] = true
		included[domain.SeasonTypePlayoffs] = true
	}
	return included
}

func idSet(ids []int) map[int]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func inFilter(g domain.Game, filter map[int]struct{}) bool {
	if _, ok := filter[g.HomeTeamID]; ok {
		return true
	}
	_, ok := filter[g.AwayTeamID]
	return ok
}

// dedupeAndSort suppresses duplicate game ids (the same real game shows up in
// both teams' logs) and orders ascending by date, then id for stability.
func dedupeAndSort(games []domain.Game) []domain.Game {
	seen := make(map[string]struct{}, len(games))
	out := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
