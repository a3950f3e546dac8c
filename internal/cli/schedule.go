package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"nba-cal/internal/config"
	"nba-cal/internal/domain"
	"nba-cal/internal/schedule"
)

var scheduleLimit int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "View upcoming games for tracked teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.Tracked.IsEmpty() {
			fmt.Println("No teams tracked. Use 'nba-cal track <team>' first.")
			return nil
		}

		rt := config.LoadRuntime()
		fetcher := buildFetcher(rt)

		fmt.Printf("Fetching schedule for %s...\n", cfg.Season)
		result, err := fetcher.FetchSeason(cmd.Context(), cfg.Season, schedule.Options{
			TeamIDs:         cfg.Tracked.TeamIDs(),
			IncludePlayoffs: true,
		})
		if err != nil {
			fmt.Println("No games found. The season may not have started yet.")
			return nil
		}

		now := time.Now()
		var upcoming []domain.Game
		for _, g := range result.Games {
			if !g.Date.Before(now) {
				upcoming = append(upcoming, g)
			}
			if len(upcoming) == scheduleLimit {
				break
			}
		}

		if len(upcoming) == 0 {
			fmt.Println("No upcoming games found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTIME\tMATCHUP\tTYPE")
		for _, g := range upcoming {
			seasonType := ""
			if g.SeasonType != domain.SeasonTypeRegular {
				seasonType = string(g.SeasonType)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				g.Date.Format("Mon Jan 02"),
				g.Date.Format("3:04 PM"),
				g.MatchupFull(),
				seasonType)
		}
		return w.Flush()
	},
}

func init() {
	scheduleCmd.Flags().IntVarP(&scheduleLimit, "limit", "n", 10, "number of games to show")
}
