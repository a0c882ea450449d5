package main

import (
	"errors"
	"fmt"

	"github.com/pathfall/pathfall/internal/console"
	"github.com/pathfall/pathfall/internal/game/character"
	"github.com/pathfall/pathfall/internal/game/rules"
	"github.com/pathfall/pathfall/internal/game/watchers"
	"github.com/pathfall/pathfall/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultHeroName = "Hero"

func newExploreCmd(a *app) *cobra.Command {
	var stages int
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore a zone stage by stage and defeat its boss",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("stages") {
				stages = a.cfg.Game.Stages
			}
			if stages < 1 {
				return fmt.Errorf("stages must be positive, got %d", stages)
			}
			return a.play(cmd, session.ModeExploration, stages)
		},
	}
	cmd.Flags().IntVar(&stages, "stages", session.DefaultStages, "number of stages before the boss")
	return cmd
}

func newClassicCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classic",
		Short: "Fight endless battles until you fall or retire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.play(cmd, session.ModeClassic, 0)
		},
	}
}

func (a *app) play(cmd *cobra.Command, mode session.Mode, stages int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	rng, seed, err := a.rng()
	if err != nil {
		return err
	}
	logger := a.logger.With(zap.String("mode", string(mode)))
	logger.Info("starting session", zap.Int64("seed", seed), zap.String("version", version))

	store, err := a.openScores(ctx)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("failed to close score store", zap.Error(cerr))
		}
	}()

	renderer := console.NewRenderer(out)
	top, err := store.Top(ctx, a.cfg.Scores.Top)
	if err != nil {
		return fmt.Errorf("load high scores: %w", err)
	}
	renderer.ShowScores(top)

	prompter := console.NewPrompter(cmd.InOrStdin(), out)
	name, err := prompter.AskName(defaultHeroName)
	if errors.Is(err, rules.ErrQuit) {
		return nil
	}
	if err != nil {
		return err
	}
	hero := character.NewStarterHero(rng, name)

	runner := session.NewRunner(rng, prompter, store, logger)
	runner.Observe(renderer)
	runner.Observe(watchers.NewEventLog(logger))

	var summary session.Summary
	switch mode {
	case session.ModeExploration:
		summary, err = runner.Explore(ctx, hero, stages)
	default:
		summary, err = runner.Classic(ctx, hero)
	}
	renderer.ShowSummary(summary)
	return err
}
