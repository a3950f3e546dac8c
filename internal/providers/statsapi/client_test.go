package statsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nba-cal/internal/domain"
	"nba-cal/internal/providers"
)

const gameFinderPayload = `{
  "resultSets": [
    {
      "name": "LeagueGameFinderResults",
      "headers": ["GAME_ID", "GAME_DATE", "MATCHUP", "WL", "PTS", "PLUS_MINUS"],
      "rowSet": [
        ["0022400123", "2024-12-25", "BOS @ NYK", "W", 110, 8],
        ["0022400124", "2024-12-27", "BOS ? MIA", "L", 95, -5]
      ]
    }
  ]
}`

func TestClientFetchTeamGames(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != gameFinderPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		fmt.Fprint(w, gameFinderPayload)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	batch, err := client.FetchTeamGames(context.Background(), "2024-25", 1610612738, domain.SeasonTypeRegular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["TeamID"] != "1610612738" || gotQuery["Season"] != "2024-25" || gotQuery["SeasonType"] != "Regular Season" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if gotQuery["PlayerOrTeam"] != "T" || gotQuery["LeagueID"] != "00" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}

	if len(batch.Games) != 1 || batch.Games[0].ID != "0022400123" {
		t.Fatalf("expected 1 normalized game, got %+v", batch.Games)
	}
	if len(batch.Dropped) != 1 || batch.Dropped[0].GameID != "0022400124" {
		t.Fatalf("expected the garbled row dropped, got %+v", batch.Dropped)
	}
}

func TestClientFetchTeamGamesRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	_, err := client.FetchTeamGames(context.Background(), "2024-25", 1610612738, domain.SeasonTypeRegular)

	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests || rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("unexpected rate limit details: %+v", rlErr)
	}
}

func TestClientFetchTeamGamesBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if _, err := client.FetchTeamGames(context.Background(), "2024-25", 1610612738, domain.SeasonTypeRegular); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestClientFetchTeamGamesEmptyResultSets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resultSets": []}`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if _, err := client.FetchTeamGames(context.Background(), "2024-25", 1610612738, domain.SeasonTypeRegular); err == nil {
		t.Fatalf("expected error for missing result sets")
	}
}

func TestQuerySeasonType(t *testing.T) {
	cases := map[domain.SeasonType]string{
		domain.SeasonTypeRegular:   "Regular Season",
		domain.SeasonTypePreseason: "Pre Season",
		domain.SeasonTypePlayoffs:  "Playoffs",
		domain.SeasonTypePlayIn:    "PlayIn",
	}
	for st, want := range cases {
		if got := querySeasonType(st); got != want {
			t.Fatalf("%s: expected %q, got %q", st, want, got)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("45"); got != 45*time.Second {
		t.Fatalf("expected 45s, got %v", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("expected 0 for empty header, got %v", got)
	}
	if got := parseRetryAfter("-2"); got != 0 {
		t.Fatalf("expected 0 for negative header, got %v", got)
	}
}
