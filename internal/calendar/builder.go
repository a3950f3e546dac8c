// Package calendar synthesizes iCalendar documents from game lists: one per
// tracked team, conference, or division, plus a combined document.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"nba-cal/internal/domain"
	"nba-cal/internal/teams"
)

const (
	productID    = "-//NBA Cal//nba-cal//EN"
	calendarTZ   = "America/New_York"
	calendarName = "NBA Schedule"
)

// Builder turns game lists into calendar documents.
type Builder struct {
	now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// ForTeam builds a calendar of every game the team plays, home or away.
func (b *Builder) ForTeam(games []domain.Game, abbrev string, reminderMinutes int) (*ics.Calendar, error) {
	team, ok := teams.ByAbbreviation(abbrev)
	if !ok {
		return nil, fmt.Errorf("unknown team: %s", abbrev)
	}

	cal := b.newCalendar("NBA - " + team.Name)
	b.addGames(cal, games, reminderMinutes, func(g domain.Game) bool {
		return g.InvolvesTeam(team.Abbreviation)
	})
	return cal, nil
}

// ForConference builds a calendar of games where either side belongs to the
// conference. A game never appears twice even when both sides match.
func (b *Builder) ForConference(games []domain.Game, conference string, reminderMinutes int) (*ics.Calendar, error) {
	if !teams.IsConference(conference) {
		return nil, fmt.Errorf("unknown conference: %s", conference)
	}

	members := abbrevSet(teams.ByConference(conference))
	cal := b.newCalendar(fmt.Sprintf("NBA - %sern Conference", titleName(conference)))
	b.addGames(cal, games, reminderMinutes, func(g domain.Game) bool {
		return sideMatches(g, members)
	})
	return cal, nil
}

// ForDivision builds a calendar of games where either side belongs to the division.
func (b *Builder) ForDivision(games []domain.Game, division string, reminderMinutes int) (*ics.Calendar, error) {
	if !teams.IsDivision(division) {
		return nil, fmt.Errorf("unknown division: %s", division)
	}

	members := abbrevSet(teams.ByDivision(division))
	cal := b.newCalendar(fmt.Sprintf("NBA - %s Division", titleName(division)))
	b.addGames(cal, games, reminderMinutes, func(g domain.Game) bool {
		return sideMatches(g, members)
	})
	return cal, nil
}

// Combined builds one calendar holding every distinct game exactly once.
func (b *Builder) Combined(games []domain.Game, reminderMinutes int) *ics.Calendar {
	cal := b.newCalendar(calendarName)
	b.addGames(cal, games, reminderMinutes, func(domain.Game) bool { return true })
	return cal
}

func (b *Builder) newCalendar(name string) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(name)
	cal.SetXWRTimezone(calendarTZ)
	return cal
}

// addGames appends matching games, gated by a seen-id set so the event count
// never exceeds the distinct game ids in the input.
func (b *Builder) addGames(cal *ics.Calendar, games []domain.Game, reminderMinutes int, match func(domain.Game) bool) {
	now := b.now()
	seen := make(map[string]struct{}, len(games))
	for _, g := range games {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		if !match(g) {
			continue
		}
		seen[g.ID] = struct{}{}
		addGameEvent(cal, g, reminderMinutes, now)
	}
}

func abbrevSet(members []teams.Team) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, t := range members {
		set[t.Abbreviation] = struct{}{}
	}
	return set
}

func sideMatches(g domain.Game, members map[string]struct{}) bool {
	if _, ok := members[g.HomeTeamAbbrev]; ok {
		return true
	}
	_, ok := members[g.AwayTeamAbbrev]
	return ok
}

// titleName capitalizes a conference/division name for display.
func titleName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}
