package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pathfall/pathfall/internal/config"
	"github.com/pathfall/pathfall/internal/game/random"
	"github.com/pathfall/pathfall/internal/scores"
	"github.com/pathfall/pathfall/internal/scores/postgres"
	"github.com/pathfall/pathfall/internal/scores/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	configPath string
	seed       int64
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathfall",
		Short: "A turn-based combat adventure in the terminal",
		Long: `Pathfall pits a hero against waves of enemies. Explore a zone stage by
stage and face its boss, or fight endless classic battles for a place in
the high-score table.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file (default ./pathfall.yaml)")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "random seed; 0 picks one")

	root.AddCommand(newExploreCmd(a), newClassicCmd(a), newScoresCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = a.seed
	}
	a.cfg = cfg

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// rng returns the session's random source and the seed it was built from.
func (a *app) rng() (random.Source, int64, error) {
	seed := a.cfg.Game.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return random.New(seed), seed, nil
}

type scoreStore interface {
	scores.Recorder
	io.Closer
}

func (a *app) openScores(ctx context.Context) (scoreStore, error) {
	cfg := a.cfg.Scores
	if cfg.Driver == config.DriverPostgres {
		store, err := postgres.Open(ctx, cfg.DSN, cfg.Keep)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	store, err := sqlite.Open(cfg.DSN, cfg.Keep)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
