package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newMatchmakeCmd() *cobra.Command {
	var players string
	var strategy string

	cmd := &cobra.Command{
		Use:   "matchmake",
		Short: "Generate balanced match assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_ids": strings.Split(players, ","),
				"strategy":   strategy,
			}
			var result GenerateResult

			if err := client.Post("/api/v1/matchmaking/generate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&players, "players", "", "Comma-separated player ids (required, multiple of 4)")
	cmd.Flags().StringVar(&strategy, "strategy", "skill_tiered", "Strategy: skill_tiered, random_balanced, mixed_tier")
	_ = cmd.MarkFlagRequired("players")

	return cmd
}
