// Package config loads pathfall settings from an optional YAML file and
// PATHFALL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded setting is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Score store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Scores  ScoresConfig  `mapstructure:"scores"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// GameConfig controls sessions.
type GameConfig struct {
	Stages int   `mapstructure:"stages"`
	Seed   int64 `mapstructure:"seed"` // 0 picks a random seed
}

// ScoresConfig selects and sizes the high-score store.
type ScoresConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Top    int    `mapstructure:"top"`  // entries shown
	Keep   int    `mapstructure:"keep"` // entries retained
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("game.stages", 10)
	v.SetDefault("game.seed", 0)
	v.SetDefault("scores.driver", DriverSQLite)
	v.SetDefault("scores.dsn", "pathfall-scores.db")
	v.SetDefault("scores.top", 3)
	v.SetDefault("scores.keep", 10)
}

// Load reads the configuration file at path and applies environment
// overrides such as PATHFALL_SCORES_DSN. An empty path looks for
// pathfall.yaml in the working directory and tolerates its absence. Level,
// format and driver names are lower-cased.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("pathfall")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("pathfall")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Scores.Driver = strings.ToLower(strings.TrimSpace(cfg.Scores.Driver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Game.Stages < 1 {
		return fmt.Errorf("%w: game.stages must be positive, got %d", ErrInvalidConfig, c.Game.Stages)
	}
	switch c.Scores.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: scores.driver %q", ErrInvalidConfig, c.Scores.Driver)
	}
	if strings.TrimSpace(c.Scores.DSN) == "" {
		return fmt.Errorf("%w: scores.dsn is empty", ErrInvalidConfig)
	}
	if c.Scores.Top < 1 || c.Scores.Keep < c.Scores.Top {
		return fmt.Errorf("%w: scores.top %d and scores.keep %d", ErrInvalidConfig, c.Scores.Top, c.Scores.Keep)
	}
	return nil
}
