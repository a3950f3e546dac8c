// Package teams holds the static NBA team directory: a fixed table of the 30
// franchises with conference and division membership, plus pure lookups over it.
package teams

import "strings"

// Team identifies one franchise in the directory.
type Team struct {
	Abbreviation string
	Name         string
	FullName     string
	Conference   string
	Division     string
	ID           int
}

// Conference and division names as they appear in the directory.
const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)

// Divisions maps each conference to its three divisions.
var Divisions = map[string][]string{
	ConferenceEast: {"Atlantic", "Central", "Southeast"},
	ConferenceWest: {"Northwest", "Pacific", "Southwest"},
}

// directory is the authoritative table, ordered by conference then division.
// ByName resolves ties by this order, so the order is part of the contract.
var directory = []Team{
	{Abbreviation: "BOS", Name: "Boston Celtics", FullName: "Boston Celtics", Conference: ConferenceEast, Division: "Atlantic", ID: 1610612738},
	{Abbreviation: "BKN", Name: "Brooklyn Nets", FullName: "Brooklyn Nets", Conference: ConferenceEast, Division: "Atlantic", ID: 1610612751},
	{Abbreviation: "NYK", Name: "New York Knicks", FullName: "New York Knicks", Conference: ConferenceEast, Division: "Atlantic", ID: 1610612752},
	{Abbreviation: "PHI", Name: "Philadelphia 76ers", FullName: "Philadelphia 76ers", Conference: ConferenceEast, Division: "Atlantic", ID: 1610612755},
	{Abbreviation: "TOR", Name: "Toronto Raptors", FullName: "Toronto Raptors", Conference: ConferenceEast, Division: "Atlantic", ID: 1610612761},
	{Abbreviation: "CHI", Name: "Chicago Bulls", FullName: "Chicago Bulls", Conference: ConferenceEast, Division: "Central", ID: 1610612741},
	{Abbreviation: "CLE", Name: "Cleveland Cavaliers", FullName: "Cleveland Cavaliers", Conference: ConferenceEast, Division: "Central", ID: 1610612739},
	{Abbreviation: "DET", Name: "Detroit Pistons", FullName: "Detroit Pistons", Conference: ConferenceEast, Division: "Central", ID: 1610612765},
	{Abbreviation: "IND", Name: "Indiana Pacers", FullName: "Indiana Pacers", Conference: ConferenceEast, Division: "Central", ID: 1610612754},
	{Abbreviation: "MIL", Name: "Milwaukee Bucks", FullName: "Milwaukee Bucks", Conference: ConferenceEast, Division: "Central", ID: 1610612749},
	{Abbreviation: "ATL", Name: "Atlanta Hawks", FullName: "Atlanta Hawks", Conference: ConferenceEast, Division: "Southeast", ID: 1610612737},
	{Abbreviation: "CHA", Name: "Charlotte Hornets", FullName: "Charlotte Hornets", Conference: ConferenceEast, Division: "Southeast", ID: 1610612766},
	{Abbreviation: "MIA", Name: "Miami Heat", FullName: "Miami Heat", Conference: ConferenceEast, Division: "Southeast", ID: 1610612748},
	{Abbreviation: "ORL", Name: "Orlando Magic", FullName: "Orlando Magic", Conference: ConferenceEast, Division: "Southeast", ID: 1610612753},
	{Abbreviation: "WAS", Name: "Washington Wizards", FullName: "Washington Wizards", Conference: ConferenceEast, Division: "Southeast", ID: 1610612764},
	{Abbreviation: "DEN", Name: "Denver Nuggets", FullName: "Denver Nuggets", Conference: ConferenceWest, Division: "Northwest", ID: 1610612743},
	{Abbreviation: "MIN", Name: "Minnesota Timberwolves", FullName: "Minnesota Timberwolves", Conference: ConferenceWest, Division: "Northwest", ID: 1610612750},
	{Abbreviation: "OKC", Name: "Oklahoma City Thunder", FullName: "Oklahoma City Thunder", Conference: ConferenceWest, Division: "Northwest", ID: 1610612760},
	{Abbreviation: "POR", Name: "Portland Trail Blazers", FullName: "Portland Trail Blazers", Conference: ConferenceWest, Division: "Northwest", ID: 1610612757},
	{Abbreviation: "UTA", Name: "Utah Jazz", FullName: "Utah Jazz", Conference: ConferenceWest, Division: "Northwest", ID: 1610612762},
	{Abbreviation: "GSW", Name: "Golden State Warriors", FullName: "Golden State Warriors", Conference: ConferenceWest, Division: "Pacific", ID: 1610612744},
	{Abbreviation: "LAC", Name: "Los Angeles Clippers", FullName: "Los Angeles Clippers", Conference: ConferenceWest, Division: "Pacific", ID: 1610612746},
	{Abbreviation: "LAL", Name: "Los Angeles Lakers", FullName: "Los Angeles Lakers", Conference: ConferenceWest, Division: "Pacific", ID: 1610612747},
	{Abbreviation: "PHX", Name: "Phoenix Suns", FullName: "Phoenix Suns", Conference: ConferenceWest, Division: "Pacific", ID: 1610612756},
	{Abbreviation: "SAC", Name: "Sacramento Kings", FullName: "Sacramento Kings", Conference: ConferenceWest, Division: "Pacific", ID: 1610612758},
	{Abbreviation: "DAL", Name: "Dallas Mavericks", FullName: "Dallas Mavericks", Conference: ConferenceWest, Division: "Southwest", ID: 1610612742},
	{Abbreviation: "HOU", Name: "Houston Rockets", FullName: "Houston Rockets", Conference: ConferenceWest, Division: "Southwest", ID: 1610612745},
	{Abbreviation: "MEM", Name: "Memphis Grizzlies", FullName: "Memphis Grizzlies", Conference: ConferenceWest, Division: "Southwest", ID: 1610612763},
	{Abbreviation: "NOP", Name: "New Orleans Pelicans", FullName: "New Orleans Pelicans", Conference: ConferenceWest, Division: "Southwest", ID: 1610612740},
	{Abbreviation: "SAS", Name: "San Antonio Spurs", FullName: "San Antonio Spurs", Conference: ConferenceWest, Division: "Southwest", ID: 1610612759},
}

// byAbbrev is built once at init and never mutated.
var byAbbrev = func() map[string]Team {
	m := make(map[string]Team, len(directory))
	for _, t := range directory {
		m[t.Abbreviation] = t
	}
	return m
}()

// All returns a copy of the directory in canonical table order.
func All() []Team {
	out := make([]Team, len(directory))
	copy(out, directory)
	return out
}

// ByAbbreviation looks up a team by its three-letter code (case-insensitive).
func ByAbbreviation(code string) (Team, bool) {
	t, ok := byAbbrev[strings.ToUpper(strings.TrimSpace(code))]
	return t, ok
}

// ByName finds the first team whose name, full name, or abbreviation matches
// the fragment (case-insensitive substring for names, exact for abbreviations).
// The first match in table order wins; the table order is fixed, so repeated
// lookups are deterministic.
func ByName(fragment string) (Team, bool) {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return Team{}, false
	}
	for _, t := range directory {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.FullName), needle) ||
			needle == strings.ToLower(t.Abbreviation) {
			return t, true
		}
	}
	return Team{}, false
}

// ByConference returns all teams in the named conference, in table order.
func ByConference(name string) []Team {
	conf := normalizeName(name)
	var out []Team
	for _, t := range directory {
		if t.Conference == conf {
			out = append(out, t)
		}
	}
	return out
}

// ByDivision returns all teams in the named division, in table order.
func ByDivision(name string) []Team {
	div := normalizeName(name)
	var out []Team
	for _, t := range directory {
		if t.Division == div {
			out = append(out, t)
		}
	}
	return out
}

// IsConference reports whether the name matches a known conference.
func IsConference(name string) bool {
	n := normalizeName(name)
	return n == ConferenceEast || n == ConferenceWest
}

// IsDivision reports whether the name matches a known division.
func IsDivision(name string) bool {
	n := normalizeName(name)
	for _, divs := range Divisions {
		for _, d := range divs {
			if d == n {
				return true
			}
		}
	}
	return false
}

// normalizeName title-cases the first letter so "east" and "atlantic" resolve.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}
