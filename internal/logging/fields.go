package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldSeason     = "season"
	FieldSeasonType = "season_type"
	FieldTeamID     = "team_id"
	FieldGameID     = "game_id"
	FieldCount      = "count"
	FieldPath       = "path"
	FieldReason     = "reason"
)
