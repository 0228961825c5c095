package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session lifecycle commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionMatchesCmd())
	cmd.AddCommand(newSessionActivateCmd())
	cmd.AddCommand(newSessionCompleteCmd())

	return cmd
}

// teamRef accepts a team either as a bare id pair or as the object shape
// the generate command outputs
type teamRef struct {
	Players [2]string `json:"players"`
}

func (t *teamRef) UnmarshalJSON(data []byte) error {
	var ids [2]string
	if err := json.Unmarshal(data, &ids); err == nil {
		t.Players = ids
		return nil
	}

	var obj struct {
		Players [2]string `json:"players"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Players = obj.Players
	return nil
}

type previewFileEntry struct {
	Court string  `json:"court"`
	TeamA teamRef `json:"team_a"`
	TeamB teamRef `json:"team_b"`
}

func newSessionCreateCmd() *cobra.Command {
	var date string
	var previewsFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Persist a generated assignment as a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(previewsFile)
			if err != nil {
				return fmt.Errorf("failed to read previews file: %w", err)
			}

			var entries []previewFileEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to parse previews file: %w", err)
			}

			previews := make([]map[string]any, len(entries))
			for i, e := range entries {
				previews[i] = map[string]any{
					"court":  e.Court,
					"team_a": e.TeamA.Players,
					"team_b": e.TeamB.Players,
				}
			}

			req := map[string]any{
				"date":     date,
				"previews": previews,
			}
			var result SessionWithMatches

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&previewsFile, "previews", "", "Path to JSON file with match previews (required)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("previews")

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Session

			if err := client.Get("/api/v1/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Show session details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/api/v1/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionMatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matches <session-id>",
		Short: "List a session's matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Match

			if err := client.Get("/api/v1/sessions/"+args[0]+"/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <session-id>",
		Short: "Activate a planned session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/activate", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <session-id>",
		Short: "Complete an active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/complete", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
