package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nba-cal/internal/calendar"
	"nba-cal/internal/config"
	"nba-cal/internal/export"
	"nba-cal/internal/schedule"
)

var (
	syncIncludePreseason bool
	syncIncludePlayoffs  bool
	syncReminderMinutes  int
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the schedule and generate calendar files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.Tracked.IsEmpty() {
			fmt.Println("No teams tracked. Use 'nba-cal track <team>' first.")
			return nil
		}

		rt := config.LoadRuntime()
		fetcher := buildFetcher(rt)

		fmt.Printf("Fetching %s schedule...\n", cfg.Season)
		result, err := fetcher.FetchSeason(cmd.Context(), cfg.Season, schedule.Options{
			TeamIDs:          cfg.Tracked.TeamIDs(),
			IncludePreseason: syncIncludePreseason,
			IncludePlayoffs:  syncIncludePlayoffs,
		})
		if err != nil || len(result.Games) == 0 {
			fmt.Println("No games found. The season may not have started yet.")
			return nil
		}
		fmt.Printf("Found %d games\n", len(result.Games))
		if dropped := len(result.Dropped); dropped > 0 {
			fmt.Printf("Skipped %d unparseable records\n", dropped)
		}

		fmt.Println("Generating calendar files...")
		manager := export.NewManager(rt.OutputDir, calendar.NewBuilder(), logger, recorder)
		written := manager.ExportAll(result.Games, cfg.Tracked, syncReminderMinutes)

		fmt.Printf("\nGenerated %d calendar file(s):\n", len(written))
		for _, path := range written {
			fmt.Printf("  %s\n", path)
		}

		fmt.Println("\nTo import into Google Calendar:")
		fmt.Println("  1. Go to calendar.google.com")
		fmt.Println("  2. Click the gear icon > Settings")
		fmt.Println("  3. Import & Export > Import")
		fmt.Println("  4. Select the .ics file and choose a calendar")
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncIncludePreseason, "include-preseason", false, "include preseason games")
	syncCmd.Flags().BoolVar(&syncIncludePlayoffs, "include-playoffs", true, "include playoff games")
	syncCmd.Flags().IntVar(&syncReminderMinutes, "reminder", 60, "minutes before tip-off for reminders (0 disables)")
}
