package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerAvailabilityCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name string
	var skill int
	var guest bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"display_name": name,
				"skill":        skill,
				"is_guest":     guest,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	cmd.Flags().IntVar(&skill, "skill", 0, "Skill rating 1-100 (required)")
	cmd.Flags().BoolVar(&guest, "guest", false, "Register as drop-in guest")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("skill")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if date != "" {
				path += "?date=" + date
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Filter to players available on date (YYYY-MM-DD)")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show player details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerAvailabilityCmd() *cobra.Command {
	var dates string

	cmd := &cobra.Command{
		Use:   "availability <player-id>",
		Short: "Set a player's available session dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dateList []string
			if dates != "" {
				dateList = strings.Split(dates, ",")
			}

			req := map[string]any{"dates": dateList}
			var result Player

			if err := client.Put("/api/v1/players/"+args[0]+"/availability", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&dates, "dates", "", "Comma-separated dates (YYYY-MM-DD)")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %s removed", args[0]))
			return nil
		},
	}
}
