package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nba-cal/internal/config"
	"nba-cal/internal/teams"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		fmt.Printf("Config file: %s\n", config.ConfigPath())
		fmt.Printf("Season: %s\n", cfg.Season)

		if len(cfg.Tracked.Teams) > 0 {
			fmt.Println("\nTracked teams:")
			for _, abbrev := range cfg.Tracked.Teams {
				if t, ok := teams.ByAbbreviation(abbrev); ok {
					fmt.Printf("  - %s (%s)\n", t.Name, abbrev)
				} else {
					fmt.Printf("  - %s\n", abbrev)
				}
			}
		}
		if len(cfg.Tracked.Conferences) > 0 {
			fmt.Println("\nTracked conferences:")
			for _, conf := range cfg.Tracked.Conferences {
				fmt.Printf("  - %sern Conference\n", conf)
			}
		}
		if len(cfg.Tracked.Divisions) > 0 {
			fmt.Println("\nTracked divisions:")
			for _, div := range cfg.Tracked.Divisions {
				fmt.Printf("  - %s Division\n", div)
			}
		}

		if cfg.Tracked.IsEmpty() {
			fmt.Println("\nNo teams tracked. Use 'nba-cal track <team>' to add teams.")
		}
		return nil
	},
}
