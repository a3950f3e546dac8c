// Package cli implements the command-line surface: config management plus the
// sync command that fetches the schedule and exports calendars.
package cli

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"nba-cal/internal/config"
	"nba-cal/internal/logging"
	"nba-cal/internal/metrics"
	"nba-cal/internal/providers"
	"nba-cal/internal/providers/cdn"
	"nba-cal/internal/providers/statsapi"
	"nba-cal/internal/schedule"
)

const appVersion = "dev"

var (
	debugFlag bool

	logger   *slog.Logger
	recorder = metrics.NewRecorder()
)

var rootCmd = &cobra.Command{
	Use:   "nba-cal",
	Short: "NBA schedule tracker - get NBA games on your calendar",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		rt := config.LoadRuntime()
		level := rt.LogLevel
		if debugFlag {
			level = "debug"
		}
		logger = logging.NewLogger(logging.Config{
			Level:   level,
			Format:  rt.LogFormat,
			Service: "nba-cal",
			Version: appVersion,
		})
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.AddCommand(teamsCmd, conferencesCmd, trackCmd, untrackCmd, statusCmd, scheduleCmd, syncCmd)
}

// buildFetcher wires the provider chain: a retried bulk client plus a paced
// per-team client sharing one bounded HTTP client.
func buildFetcher(rt config.Runtime) *schedule.Fetcher {
	httpClient := &http.Client{Timeout: rt.HTTPTimeout}

	bulk := providers.NewRetryingBulkProvider(
		cdn.NewClient(cdn.Config{BaseURL: rt.ScheduleURL, HTTPClient: httpClient}),
		logger, rt.MaxRetries, 0)

	teamLog := providers.NewPacedTeamLogProvider(
		statsapi.NewClient(statsapi.Config{BaseURL: rt.StatsURL, HTTPClient: httpClient}),
		rt.FetchDelay, logger)

	return schedule.NewFetcher(bulk, teamLog, logger, recorder)
}
