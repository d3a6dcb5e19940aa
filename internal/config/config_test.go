package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/scenario"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, ModePlay, conf.Mode)
		assert.Equal(t, "complete", conf.Grade.Tier)
		assert.False(t, conf.Scoreboard.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())

		starting, err := conf.Starting()
		require.NoError(t, err)
		assert.Equal(t, entity.X, starting)
	})

	t.Run("Reads the file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
mode: grade
starting-player: o
grade:
  tier: base
scoreboard:
  enabled: true
redis:
  host: redis
  port: "6380"
`)

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ModeGrade, conf.Mode)
		assert.True(t, conf.Scoreboard.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())

		starting, err := conf.Starting()
		require.NoError(t, err)
		assert.Equal(t, entity.O, starting)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "mode: play\n")
		t.Setenv("MODE", "grade")
		t.Setenv("GRADE_TIER", "2")

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ModeGrade, conf.Mode)
		assert.Equal(t, "2", conf.Grade.Tier)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{LogLevel: "info", Mode: ModePlay, StartingPlayer: "X", Grade: Grade{Tier: "complete"}}
	}

	require.NoError(t, valid().Validate())

	conf := valid()
	conf.Mode = "serve"
	assert.ErrorIs(t, conf.Validate(), ErrUnknownMode)

	conf = valid()
	conf.LogLevel = "verbose"
	assert.ErrorIs(t, conf.Validate(), ErrUnknownLogLevel)

	conf = valid()
	conf.StartingPlayer = "-"
	assert.ErrorIs(t, conf.Validate(), apperror.ErrInvalidPlayer)

	conf = valid()
	conf.Grade.Tier = "expert"
	assert.ErrorIs(t, conf.Validate(), scenario.ErrUnknownTier)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
	})
}
