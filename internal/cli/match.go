package cli

import (
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Live match scoring commands",
	}

	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchStartCmd())
	cmd.AddCommand(newMatchScoreCmd())
	cmd.AddCommand(newMatchUndoCmd())

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <match-id>",
		Short: "Show match details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get("/api/v1/matches/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <match-id>",
		Short: "Start a waiting match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/start", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchScoreCmd() *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "score <match-id>",
		Short: "Record a game win for a side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"side": side}
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "", "Scoring side: A or B (required)")
	_ = cmd.MarkFlagRequired("side")

	return cmd
}

func newMatchUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <match-id>",
		Short: "Undo the last recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/undo", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
