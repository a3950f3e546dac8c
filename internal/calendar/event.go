package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"nba-cal/internal/domain"
)

// uidNamespace fixes the UUID namespace so event identifiers derive only from
// season and game id. Re-synthesizing the same game always yields the same UID.
var uidNamespace = uuid.MustParse("5ba11b86-ca1e-4da2-9d2c-0ce5f3b7d92a")

// gameDuration is a fixed assumption; the feeds carry no end time.
const gameDuration = 3 * time.Hour

// EventUID derives the stable calendar identifier for one game.
func EventUID(season, gameID string) string {
	return uuid.NewMD5(uidNamespace, []byte(fmt.Sprintf("nba-%s-%s", season, gameID))).String() + "@nba-cal"
}

// addGameEvent appends one VEVENT for the game, with an alarm only for
// upcoming games and a positive reminder lead.
func addGameEvent(cal *ics.Calendar, g domain.Game, reminderMinutes int, now time.Time) {
	event := cal.AddEvent(EventUID(g.Season, g.ID))

	event.SetSummary(eventSummary(g))
	event.SetStartAt(g.Date)
	event.SetEndAt(g.Date.Add(gameDuration))

	if g.Arena != "" {
		event.SetLocation(g.Arena)
	}

	event.SetDescription(eventDescription(g))
	event.AddProperty(ics.ComponentPropertyCategories, strings.Join(eventCategories(g), ","))

	if g.Completed {
		event.SetStatus(ics.ObjectStatusConfirmed)
	} else {
		event.SetStatus(ics.ObjectStatusTentative)
	}

	if !g.Completed && reminderMinutes > 0 {
		alarm := event.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", reminderMinutes))
		alarm.SetProperty(ics.ComponentPropertyDescription, fmt.Sprintf("NBA: %s starting soon", g.Matchup()))
	}

	event.SetDtStampTime(now)
	event.SetCreatedTime(now)
}

// eventSummary is the short matchup, with scores folded in once final.
func eventSummary(g domain.Game) string {
	if g.Completed && g.HomeScore != nil && g.AwayScore != nil {
		return fmt.Sprintf("%s %d @ %s %d", g.AwayTeamAbbrev, *g.AwayScore, g.HomeTeamAbbrev, *g.HomeScore)
	}
	return g.Matchup()
}

func eventDescription(g domain.Game) string {
	lines := []string{
		g.MatchupFull(),
		"Season: " + g.Season,
	}
	if g.SeasonType != domain.SeasonTypeRegular {
		lines = append(lines, "Type: "+string(g.SeasonType))
	}
	if g.Completed {
		if score := g.ScoreLine(); score != "" {
			lines = append(lines, "Final: "+score)
		}
	}
	return strings.Join(lines, "\n")
}

func eventCategories(g domain.Game) []string {
	categories := []string{"NBA", "Basketball"}
	if g.SeasonType == domain.SeasonTypePlayoffs {
		categories = append(categories, "Playoffs")
	}
	return categories
}
