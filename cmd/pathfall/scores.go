package main

import (
	"fmt"

	"github.com/pathfall/pathfall/internal/console"
	"github.com/spf13/cobra"
)

func newScoresCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high-score table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("top") {
				top = a.cfg.Scores.Top
			}
			store, err := a.openScores(cmd.Context())
			if err != nil {
				return fmt.Errorf("open score store: %w", err)
			}
			defer store.Close()

			list, err := store.Top(cmd.Context(), top)
			if err != nil {
				return fmt.Errorf("load high scores: %w", err)
			}
			console.NewRenderer(cmd.OutOrStdout()).ShowScores(list)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 3, "number of scores to show")
	return cmd
}
