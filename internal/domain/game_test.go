package domain

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func sampleGame() Game {
	return Game{
		ID:             "0022400001",
		Date:           time.Date(2024, 12, 25, 19, 30, 0, 0, time.UTC),
		HomeTeamID:     1610612752,
		HomeTeamAbbrev: "NYK",
		HomeTeamName:   "New York Knicks",
		AwayTeamID:     1610612738,
		AwayTeamAbbrev: "BOS",
		AwayTeamName:   "Boston Celtics",
		Season:         "2024-25",
		SeasonType:     SeasonTypeRegular,
	}
}

func TestMatchupFormats(t *testing.T) {
	g := sampleGame()

	if got := g.Matchup(); got != "BOS @ NYK" {
		t.Fatalf("unexpected matchup %q", got)
	}
	if got := g.MatchupFull(); got != "Boston Celtics @ New York Knicks" {
		t.Fatalf("unexpected full matchup %q", got)
	}
}

func TestScoreLine(t *testing.T) {
	g := sampleGame()
	if got := g.ScoreLine(); got != "" {
		t.Fatalf("expected empty score line before completion, got %q", got)
	}

	g.Completed = true
	g.HomeScore = intPtr(110)
	g.AwayScore = intPtr(102)
	if got := g.ScoreLine(); got != "BOS 102 - 110 NYK" {
		t.Fatalf("unexpected score line %q", got)
	}
}

func TestLocationJoinsParts(t *testing.T) {
	cases := map[string]struct {
		arena, city, state string
		want               string
	}{
		"all parts":  {"Madison Square Garden", "New York", "NY", "Madison Square Garden, New York, NY"},
		"arena only": {"Madison Square Garden", "", "", "Madison Square Garden"},
		"city only":  {"", "New York", "", "New York"},
		"none":       {"", "", "", ""},
	}

	for name, tc := range cases {
		g := sampleGame()
		g.Arena, g.ArenaCity, g.ArenaState = tc.arena, tc.city, tc.state
		if got := g.Location(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", name, tc.want, got)
		}
	}
}

func TestInvolvesTeam(t *testing.T) {
	g := sampleGame()

	if !g.InvolvesTeam("bos") || !g.InvolvesTeam("NYK") {
		t.Fatalf("expected both sides to match")
	}
	if g.InvolvesTeam("LAL") {
		t.Fatalf("LAL should not match")
	}
	if !g.InvolvesTeamID(1610612738) || g.InvolvesTeamID(42) {
		t.Fatalf("unexpected id predicate results")
	}
}
