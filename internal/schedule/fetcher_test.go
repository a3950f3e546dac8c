package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-cal/internal/domain"
	"nba-cal/internal/providers"
)

func mkGame(id string, date time.Time, homeID, awayID int, st domain.SeasonType) domain.Game {
	return domain.Game{
		ID:         id,
		Date:       date,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		SeasonType: st,
	}
}

type fakeBulk struct {
	batch providers.Batch
	err   error
	calls int
}

func (f *fakeBulk) FetchSeason(ctx context.Context, season string) (providers.Batch, error) {
	f.calls++
	return f.batch, f.err
}

type teamLogCall struct {
	teamID     int
	seasonType domain.SeasonType
}

type fakeTeamLog struct {
	batches map[teamLogCall]providers.Batch
	errs    map[teamLogCall]error
	calls   []teamLogCall
}

func (f *fakeTeamLog) FetchTeamGames(ctx context.Context, season string, teamID int, st domain.SeasonType) (providers.Batch, error) {
	call := teamLogCall{teamID: teamID, seasonType: st}
	f.calls = append(f.calls, call)
	if err, ok := f.errs[call]; ok {
		return providers.Batch{}, err
	}
	return f.batches[call], nil
}

var (
	day1 = time.Date(2024, 10, 22, 19, 30, 0, 0, time.UTC)
	day2 = time.Date(2024, 10, 23, 19, 30, 0, 0, time.UTC)
	day3 = time.Date(2024, 10, 24, 19, 30, 0, 0, time.UTC)
)

func TestFetchSeasonBulkFiltersAndSorts(t *testing.T) {
	bulk := &fakeBulk{batch: providers.Batch{Games: []domain.Game{
		mkGame("0022400002", day2, 1, 2, domain.SeasonTypeRegular),
		mkGame("0022400001", day1, 1, 3, domain.SeasonTypeRegular),
		mkGame("0012400001", day1, 1, 2, domain.SeasonTypePreseason),
		mkGame("0022400003", day3, 4, 5, domain.SeasonTypeRegular),
	}}}

	f := NewFetcher(bulk, nil, nil, nil)
	result, err := f.FetchSeason(context.Background(), "2024-25", Options{TeamIDs: []int{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Games) != 2 {
		t.Fatalf("expected 2 games after filtering, got %d", len(result.Games))
	}
	if result.Games[0].ID != "0022400001" || result.Games[1].ID != "0022400002" {
		t.Fatalf("games out of order: %s, %s", result.Games[0].ID, result.Games[1].ID)
	}
}

func TestFetchSeasonBulkIncludesOptionalTypes(t *testing.T) {
	bulk := &fakeBulk{batch: providers.Batch{Games: []domain.Game{
		mkGame("0012400001", day1, 1, 2, domain.SeasonTypePreseason),
		mkGame("0022400001", day2, 1, 2, domain.SeasonTypeRegular),
		mkGame("0052400001", day3, 1, 2, domain.SeasonTypePlayIn),
		mkGame("0042400001", day3, 1, 2, domain.SeasonTypePlayoffs),
	}}}

	f := NewFetcher(bulk, nil, nil, nil)
	result, err := f.FetchSeason(context.Background(), "2024-25", Options{
		IncludePreseason: true,
		IncludePlayoffs:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Games) != 4 {
		t.Fatalf("expected all 4 games included, got %d", len(result.Games))
	}
}

func TestFetchSeasonBulkPropagatesError(t *testing.T) {
	boom := errors.New("upstream down")
	f := NewFetcher(&fakeBulk{err: boom}, nil, nil, nil)

	if _, err := f.FetchSeason(context.Background(), "2024-25", Options{}); !errors.Is(err, boom) {
		t.Fatalf("expected bulk error propagated, got %v", err)
	}
}

func TestFetchSeasonPerTeamDedupes(t *testing.T) {
	shared := mkGame("0022400010", day1, 1, 2, domain.SeasonTypeRegular)
	teamLog := &fakeTeamLog{batches: map[teamLogCall]providers.Batch{
		{1, domain.SeasonTypeRegular}: {Games: []domain.Game{shared, mkGame("0022400011", day2, 1, 3, domain.SeasonTypeRegular)}},
		{2, domain.SeasonTypeRegular}: {Games: []domain.Game{shared}},
	}}

	f := NewFetcher(&fakeBulk{}, teamLog, nil, nil)
	result, err := f.FetchSeason(context.Background(), "2024-25", Options{TeamIDs: []int{1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Games) != 2 {
		t.Fatalf("shared game should appear once, got %d games", len(result.Games))
	}
	if result.Games[0].ID != "0022400010" || result.Games[1].ID != "0022400011" {
		t.Fatalf("unexpected order: %s, %s", result.Games[0].ID, result.Games[1].ID)
	}
}

func TestFetchSeasonPerTeamIsolatesFailures(t *testing.T) {
	teamLog := &fakeTeamLog{
		batches: map[teamLogCall]providers.Batch{
			{2, domain.SeasonTypeRegular}: {Games: []domain.Game{mkGame("0022400012", day1, 2, 3, domain.SeasonTypeRegular)}},
		},
		errs: map[teamLogCall]error{
			{1, domain.SeasonTypeRegular}: errors.New("timeout"),
		},
	}

	f := NewFetcher(&fakeBulk{}, teamLog, nil, nil)
	result, err := f.FetchSeason(context.Background(), "2024-25", Options{TeamIDs: []int{1, 2}})
	if err != nil {
		t.Fatalf("sub-query failure must not fail the fetch: %v", err)
	}

	if len(result.Games) != 1 {
		t.Fatalf("expected the healthy team's game, got %d", len(result.Games))
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", len(result.Failures))
	}
	fail := result.Failures[0]
	if fail.TeamID != 1 || fail.SeasonType != domain.SeasonTypeRegular || fail.Err == nil {
		t.Fatalf("unexpected failure record: %+v", fail)
	}
}

func TestFetchSeasonPerTeamQueriesRequestedTypes(t *testing.T) {
	teamLog := &fakeTeamLog{}
	f := NewFetcher(&fakeBulk{}, teamLog, nil, nil)

	if _, err := f.FetchSeason(context.Background(), "2024-25", Options{
		TeamIDs:         []int{1},
		IncludePlayoffs: true,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []teamLogCall{
		{1, domain.SeasonTypeRegular},
		{1, domain.SeasonTypePlayIn},
		{1, domain.SeasonTypePlayoffs},
	}
	if len(teamLog.calls) != len(want) {
		t.Fatalf("expected %d sub-queries, got %d: %v", len(want), len(teamLog.calls), teamLog.calls)
	}
	for i, call := range want {
		if teamLog.calls[i] != call {
			t.Fatalf("sub-query %d: expected %+v, got %+v", i, call, teamLog.calls[i])
		}
	}
}

func TestFetchSeasonWithoutTeamLogUsesBulk(t *testing.T) {
	bulk := &fakeBulk{batch: providers.Batch{Games: []domain.Game{
		mkGame("0022400001", day1, 1, 2, domain.SeasonTypeRegular),
	}}}

	f := NewFetcher(bulk, nil, nil, nil)
	result, err := f.FetchSeason(context.Background(), "2024-25", Options{TeamIDs: []int{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bulk.calls != 1 {
		t.Fatalf("expected bulk path, got %d bulk calls", bulk.calls)
	}
	if len(result.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(result.Games))
	}
}

func TestFetchSeasonCollectsDropped(t *testing.T) {
	bulk := &fakeBulk{batch: providers.Batch{
		Games:   []domain.Game{mkGame("0022400001", day1, 1, 2, domain.SeasonTypeRegular)},
		Dropped: []providers.Dropped{{Provider: "bulk", GameID: "0022400099", Reason: "missing date"}},
	}}

	f := NewFetcher(bulk, nil, nil, nil)
	result, err := f.FetchSeason(context.Background(), "2024-25", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Dropped) != 1 || result.Dropped[0].GameID != "0022400099" {
		t.Fatalf("expected dropped diagnostics surfaced, got %+v", result.Dropped)
	}
}
