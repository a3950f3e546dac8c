package cdn

import "time"

const providerName = "cdn"

const (
	defaultBaseURL     = "https://data.nba.com"
	schedulePathFormat = "/data/10s/v2015/json/mobile_teams/nba/%d/league/00_full_schedule.json"

	defaultHTTPTimeout = 30 * time.Second

	// st values in the feed: 1 scheduled, 2 in progress, 3 final.
	statusFinal = 3
)
