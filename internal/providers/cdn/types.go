package cdn

// scheduleResponse is the nested league schedule payload: one entry per month,
// each wrapping a month schedule with its game list.
type scheduleResponse struct {
	LeagueSchedule []monthEntry `json:"lscd"`
}

type monthEntry struct {
	Month monthSchedule `json:"mscd"`
}

type monthSchedule struct {
	Name  string         `json:"mon"`
	Games []scheduleGame `json:"g"`
}

type scheduleGame struct {
	GameID     string       `json:"gid"`
	GameDate   string       `json:"gdte"`
	Timestamp  string       `json:"etm"`
	Status     int          `json:"st"`
	Series     string       `json:"seri"`
	Arena      string       `json:"an"`
	ArenaCity  string       `json:"ac"`
	ArenaState string       `json:"as"`
	Visitor    scheduleTeam `json:"v"`
	Home       scheduleTeam `json:"h"`
}

// scheduleTeam carries the feed's own home/away orientation; scores arrive as
// strings and are empty until the game is played.
type scheduleTeam struct {
	TeamID       int    `json:"tid"`
	Abbreviation string `json:"ta"`
	Nickname     string `json:"tn"`
	City         string `json:"tc"`
	Score        string `json:"s"`
}
