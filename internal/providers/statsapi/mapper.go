package statsapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"nba-cal/internal/domain"
	"nba-cal/internal/teams"
	"nba-cal/internal/timeutil"
)

// mapRow normalizes one game-log row into a Game. The row is written from the
// queried team's perspective: its MATCHUP text is the only orientation signal,
// its PTS are that team's points, and PLUS_MINUS recovers the opponent's.
func mapRow(idx map[string]int, row []json.RawMessage, season string, seasonType domain.SeasonType) (domain.Game, error) {
	gameID := stringField(idx, row, colGameID)
	if gameID == "" {
		return domain.Game{}, fmt.Errorf("row missing game id")
	}

	date, err := timeutil.ParseGameTime("", stringField(idx, row, colGameDate))
	if err != nil {
		return domain.Game{}, err
	}

	home, away, teamIsHome, err := parseMatchup(stringField(idx, row, colMatchup))
	if err != nil {
		return domain.Game{}, err
	}

	// A win/loss marker only appears once the game is in the books.
	completed := strings.TrimSpace(stringField(idx, row, colWinLoss)) != ""

	var homeScore, awayScore *int
	if completed {
		if pts, ok := intField(idx, row, colPoints); ok {
			teamScore := pts
			var oppScore *int
			if margin, ok := intField(idx, row, colPlusMinus); ok {
				v := pts - margin
				oppScore = &v
			}
			if teamIsHome {
				homeScore, awayScore = &teamScore, oppScore
			} else {
				homeScore, awayScore = oppScore, &teamScore
			}
		}
	}

	return domain.Game{
		ID:             gameID,
		Date:           date,
		HomeTeamID:     home.ID,
		HomeTeamAbbrev: home.Abbreviation,
		HomeTeamName:   home.FullName,
		AwayTeamID:     away.ID,
		AwayTeamAbbrev: away.Abbreviation,
		AwayTeamName:   away.FullName,
		HomeScore:      homeScore,
		AwayScore:      awayScore,
		Completed:      completed,
		Season:         season,
		SeasonType:     seasonType,
	}, nil
}

// parseMatchup splits combined matchup text into home and away teams.
// "BOS @ NYK" reads as BOS visiting NYK; "BOS vs. NYK" as BOS hosting NYK.
// teamIsHome reports whether the left-hand (queried) team is the host.
func parseMatchup(matchup string) (home, away teams.Team, teamIsHome bool, err error) {
	var left, right string
	switch {
	case strings.Contains(matchup, sepAway):
		left, right, _ = strings.Cut(matchup, sepAway)
		teamIsHome = false
	case strings.Contains(matchup, sepHome):
		left, right, _ = strings.Cut(matchup, sepHome)
		teamIsHome = true
	default:
		return teams.Team{}, teams.Team{}, false, fmt.Errorf("unrecognized matchup text %q", matchup)
	}

	leftTeam, ok := teams.ByAbbreviation(left)
	if !ok {
		return teams.Team{}, teams.Team{}, false, fmt.Errorf("unknown team %q in matchup %q", left, matchup)
	}
	rightTeam, ok := teams.ByAbbreviation(right)
	if !ok {
		return teams.Team{}, teams.Team{}, false, fmt.Errorf("unknown team %q in matchup %q", right, matchup)
	}

	if teamIsHome {
		return leftTeam, rightTeam, true, nil
	}
	return rightTeam, leftTeam, false, nil
}
