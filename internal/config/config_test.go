package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// Given: no config file and no overriding environment
		unsetEnv(t)
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Empty(t, conf.HistoryFile)
		assert.False(t, conf.NoColor)
	})

	t.Run("Values from the config file", func(t *testing.T) {
		// Given: a config file
		unsetEnv(t)
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhistory-file: /tmp/tictactoe.history\nno-color: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/tictactoe.history", conf.HistoryFile)
		assert.True(t, conf.NoColor)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and LOG_LEVEL in the environment
		unsetEnv(t)
		t.Setenv("LOG_LEVEL", "info")
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Project variable disables color", func(t *testing.T) {
		// Given: TICTACTOE_NO_COLOR in the environment and no config file
		unsetEnv(t)
		t.Setenv("TICTACTOE_NO_COLOR", "true")
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: color is off
		require.NoError(t, err)
		assert.True(t, conf.NoColor)
	})

	t.Run("Any NO_COLOR value loads", func(t *testing.T) {
		// Given: NO_COLOR set to a non-boolean value, as the convention allows
		unsetEnv(t)
		t.Setenv("NO_COLOR", "yes")
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: loading succeeds and the value is left to the terminal profile
		require.NoError(t, err)
		assert.False(t, conf.NoColor)
	})

	t.Run("Broken file fails", func(t *testing.T) {
		unsetEnv(t)
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

		_, err := Load(path)

		assert.Error(t, err)
	})
}

// unsetEnv clears the variables read by Load for the duration of the test.
func unsetEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"LOG_LEVEL", "HISTORY_FILE", "TICTACTOE_NO_COLOR", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
