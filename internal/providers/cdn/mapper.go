package cdn

import (
	"fmt"
	"strconv"
	"strings"

	"nba-cal/internal/domain"
	"nba-cal/internal/timeutil"
)

// mapGame normalizes one raw schedule record. The feed marks home/away itself
// via the v/h blocks, so orientation is taken from those, never from text.
func mapGame(raw scheduleGame, season string) (domain.Game, error) {
	if raw.GameID == "" {
		return domain.Game{}, fmt.Errorf("record missing game id")
	}

	date, err := timeutil.ParseGameTime(raw.Timestamp, raw.GameDate)
	if err != nil {
		return domain.Game{}, err
	}

	completed := raw.Status == statusFinal

	return domain.Game{
		ID:             raw.GameID,
		Date:           date,
		HomeTeamID:     raw.Home.TeamID,
		HomeTeamAbbrev: raw.Home.Abbreviation,
		HomeTeamName:   teamDisplayName(raw.Home),
		AwayTeamID:     raw.Visitor.TeamID,
		AwayTeamAbbrev: raw.Visitor.Abbreviation,
		AwayTeamName:   teamDisplayName(raw.Visitor),
		HomeScore:      parseScore(raw.Home.Score, completed),
		AwayScore:      parseScore(raw.Visitor.Score, completed),
		Arena:          raw.Arena,
		ArenaCity:      raw.ArenaCity,
		ArenaState:     raw.ArenaState,
		Completed:      completed,
		Season:         season,
		SeasonType:     classifySeasonType(raw.GameID, raw.Series),
	}, nil
}

func teamDisplayName(t scheduleTeam) string {
	if t.City == "" {
		return t.Nickname
	}
	return t.City + " " + t.Nickname
}

// parseScore returns nil for empty or malformed fields; an unplayed game must
// never report 0.
func parseScore(raw string, completed bool) *int {
	if !completed {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// classifySeasonType is a best-effort heuristic. The series text is free-form
// ("Game 3 of 7", "NBA Finals", ...), so substring checks can misclassify odd
// inputs; the game-id prefix covers records with no series text at all.
func classifySeasonType(gameID, series string) domain.SeasonType {
	if strings.Contains(series, "Play-In") {
		return domain.SeasonTypePlayIn
	}
	if strings.Contains(series, "Playoff") || strings.Contains(series, "Finals") {
		return domain.SeasonTypePlayoffs
	}
	if len(gameID) >= 3 {
		switch gameID[:3] {
		case "001":
			return domain.SeasonTypePreseason
		case "004":
			return domain.SeasonTypePlayoffs
		case "005":
			return domain.SeasonTypePlayIn
		}
	}
	return domain.SeasonTypeRegular
}
