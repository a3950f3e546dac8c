package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nba-cal/internal/teams"
)

var (
	teamsConference string
	teamsDivision   string
	teamsSearch     string
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List all NBA teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ABBREV\tTEAM\tCONFERENCE\tDIVISION")

		for _, t := range teams.All() {
			if teamsConference != "" && !strings.EqualFold(t.Conference, teamsConference) {
				continue
			}
			if teamsDivision != "" && !strings.EqualFold(t.Division, teamsDivision) {
				continue
			}
			if teamsSearch != "" {
				needle := strings.ToLower(teamsSearch)
				if !strings.Contains(strings.ToLower(t.Name), needle) && !strings.EqualFold(t.Abbreviation, teamsSearch) {
					continue
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Abbreviation, t.Name, t.Conference, t.Division)
		}
		return w.Flush()
	},
}

var conferencesCmd = &cobra.Command{
	Use:   "conferences",
	Short: "List NBA conferences and divisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, conf := range []string{teams.ConferenceEast, teams.ConferenceWest} {
			fmt.Printf("%sern Conference\n", conf)
			for _, div := range teams.Divisions[conf] {
				fmt.Printf("  %s Division:\n", div)
				for _, t := range teams.ByDivision(div) {
					fmt.Printf("    %s - %s\n", t.Abbreviation, t.Name)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	teamsCmd.Flags().StringVarP(&teamsConference, "conference", "c", "", "filter by conference (East/West)")
	teamsCmd.Flags().StringVarP(&teamsDivision, "division", "d", "", "filter by division")
	teamsCmd.Flags().StringVarP(&teamsSearch, "search", "s", "", "search by team name")
}
