package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pathfall/pathfall/internal/config"
	"github.com/pathfall/pathfall/internal/scores/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// testConfig writes a config file whose score database lives in a temp dir.
func testConfig(t *testing.T) (configPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "scores.db")
	configPath = filepath.Join(dir, "pathfall.yaml")
	body := "logging:\n  level: error\nscores:\n  dsn: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))
	return configPath, dbPath
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScoresCommand(t *testing.T) {
	configPath, dbPath := testConfig(t)

	out, err := run(t, "", "scores", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No high scores yet")

	store, err := sqlite.Open(dbPath, 10)
	require.NoError(t, err)
	require.NoError(t, store.RecordResult(context.Background(), "Ayla", 120, 4))
	require.NoError(t, store.Close())

	out, err = run(t, "", "scores", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Ayla: 120 EXP (4 battles won)")
}

func TestClassicQuit(t *testing.T) {
	configPath, dbPath := testConfig(t)

	out, err := run(t, "Ayla\n5\n", "classic", "--config", configPath, "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Starting Classic Mode")
	assert.Contains(t, out, "classic session ended: quit")

	store, err := sqlite.Open(dbPath, 10)
	require.NoError(t, err)
	defer store.Close()
	top, err := store.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestExploreEndOfInput(t *testing.T) {
	configPath, _ := testConfig(t)

	out, err := run(t, "Ayla\n", "explore", "--config", configPath, "--seed", "7", "--stages", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "You will traverse 3 stages")
	assert.Contains(t, out, "exploration session ended: quit")
}

func TestExploreRejectsStages(t *testing.T) {
	configPath, _ := testConfig(t)

	_, err := run(t, "", "explore", "--config", configPath, "--stages", "0")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "", "scores", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	for _, tc := range []struct {
		cfg   config.LoggingConfig
		level zapcore.Level
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{config.LoggingConfig{Level: "error", Format: "json"}, zapcore.ErrorLevel},
		{config.LoggingConfig{Level: "bogus"}, zapcore.InfoLevel},
	} {
		logger, err := initLogger(tc.cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tc.level))
		assert.False(t, logger.Core().Enabled(tc.level-1))
	}
}
