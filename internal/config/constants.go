package config

import "time"

// Environment variable names.
const (
	envConfig      = "NBA_CAL_CONFIG"
	envLogLevel    = "NBA_CAL_LOG_LEVEL"
	envLogFormat   = "NBA_CAL_LOG_FORMAT"
	envHTTPTimeout = "NBA_CAL_HTTP_TIMEOUT"
	envFetchDelay  = "NBA_CAL_FETCH_DELAY"
	envMaxRetries  = "NBA_CAL_MAX_RETRIES"
	envScheduleURL = "NBA_CAL_SCHEDULE_URL"
	envStatsURL    = "NBA_CAL_STATS_URL"
	envOutputDir   = "NBA_CAL_OUTPUT_DIR"
	envXDGConfig   = "XDG_CONFIG_HOME"
	envXDGData     = "XDG_DATA_HOME"
)

// Defaults for runtime knobs.
const (
	defaultHTTPTimeout = 30 * time.Second
	defaultFetchDelay  = 600 * time.Millisecond
	defaultMaxRetries  = 3
)

const appDirName = "nba-cal"
