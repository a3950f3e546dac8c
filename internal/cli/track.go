package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nba-cal/internal/config"
	"nba-cal/internal/teams"
)

var trackCmd = &cobra.Command{
	Use:   "track <team|conference|division>",
	Short: "Add a team, conference, or division to the tracking list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg := config.Load()

		switch {
		case teams.IsConference(name):
			conf := canonicalConference(name)
			if contains(cfg.Tracked.Conferences, conf) {
				fmt.Printf("Already tracking %sern Conference\n", conf)
				return nil
			}
			cfg.Tracked.Conferences = append(cfg.Tracked.Conferences, conf)
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Now tracking %sern Conference\n", conf)
			return nil

		case teams.IsDivision(name):
			div := canonicalDivision(name)
			if contains(cfg.Tracked.Divisions, div) {
				fmt.Printf("Already tracking %s Division\n", div)
				return nil
			}
			cfg.Tracked.Divisions = append(cfg.Tracked.Divisions, div)
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Now tracking %s Division\n", div)
			return nil
		}

		team, ok := resolveTeam(name)
		if !ok {
			fmt.Printf("Unknown team: %s\nUse 'nba-cal teams' to see available teams\n", name)
			return nil
		}
		if contains(cfg.Tracked.Teams, team.Abbreviation) {
			fmt.Printf("Already tracking %s\n", team.Name)
			return nil
		}
		cfg.Tracked.Teams = append(cfg.Tracked.Teams, team.Abbreviation)
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Now tracking %s (%s)\n", team.Name, team.Abbreviation)
		return nil
	},
}

var untrackCmd = &cobra.Command{
	Use:   "untrack <team|conference|division>",
	Short: "Remove a team, conference, or division from the tracking list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg := config.Load()

		if teams.IsConference(name) {
			conf := canonicalConference(name)
			if removed, rest := remove(cfg.Tracked.Conferences, conf); removed {
				cfg.Tracked.Conferences = rest
				if err := config.Save(cfg); err != nil {
					return err
				}
				fmt.Printf("Removed %sern Conference from tracking\n", conf)
				return nil
			}
		}
		if teams.IsDivision(name) {
			div := canonicalDivision(name)
			if removed, rest := remove(cfg.Tracked.Divisions, div); removed {
				cfg.Tracked.Divisions = rest
				if err := config.Save(cfg); err != nil {
					return err
				}
				fmt.Printf("Removed %s Division from tracking\n", div)
				return nil
			}
		}
		if team, ok := resolveTeam(name); ok {
			if removed, rest := remove(cfg.Tracked.Teams, team.Abbreviation); removed {
				cfg.Tracked.Teams = rest
				if err := config.Save(cfg); err != nil {
					return err
				}
				fmt.Printf("Removed %s from tracking\n", team.Name)
				return nil
			}
		}

		fmt.Printf("Not tracking: %s\n", name)
		return nil
	},
}

// resolveTeam accepts an abbreviation first, then falls back to name search.
func resolveTeam(input string) (teams.Team, bool) {
	if t, ok := teams.ByAbbreviation(input); ok {
		return t, true
	}
	return teams.ByName(input)
}

func canonicalConference(name string) string {
	if members := teams.ByConference(name); len(members) > 0 {
		return members[0].Conference
	}
	return name
}

func canonicalDivision(name string) string {
	if members := teams.ByDivision(name); len(members) > 0 {
		return members[0].Division
	}
	return name
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func remove(list []string, value string) (bool, []string) {
	for i, v := range list {
		if v == value {
			return true, append(list[:i:i], list[i+1:]...)
		}
	}
	return false, list
}
