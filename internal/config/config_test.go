package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/roman/internal/roman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points global config at a temp dir and runs from another temp dir
// so neither the user's home nor a stray .roman directory leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ROMAN_HOME", home)
	for _, k := range []string{"ROMAN_ENGINE", "ROMAN_NO_LOG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, roman.EngineState, cfg.Engine())
	assert.True(t, cfg.LogEnabled())
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit())
	assert.Equal(t, filepath.Join(home, "config.yaml"), GlobalPath())
}

func TestSaveAndLoad(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("validator.engine", "pattern"))
	require.NoError(t, cfg.Set("log.enabled", "false"))
	require.NoError(t, cfg.Set("history.limit", "5"))
	require.NoError(t, cfg.Save())

	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, roman.EnginePattern, loaded.Engine())
	assert.False(t, loaded.LogEnabled())
	assert.Equal(t, 5, loaded.HistoryLimit())
	assert.True(t, loaded.IsSet("history.limit"))
}

func TestLoad_LocalWins(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll(".roman", 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("validator:\n  engine: pattern\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, roman.EnginePattern, cfg.Engine())
}

func TestLoad_Invalid(t *testing.T) {
	home := isolate(t)

	t.Run("malformed yaml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("validator: [\n"), 0644))
		_, err := Load()
		assert.ErrorContains(t, err, "malformed config file")
	})

	t.Run("unknown engine", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("validator:\n  engine: abacus\n"), 0644))
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("limit out of bounds", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("history:\n  limit: 0\n"), 0644))
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ROMAN_ENGINE", "pattern")
	t.Setenv("ROMAN_NO_LOG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, roman.EnginePattern, cfg.Engine())
	assert.False(t, cfg.LogEnabled())
	assert.Equal(t, "pattern", cfg.All()["validator.engine"])
}

func TestEnv_BadBool(t *testing.T) {
	isolate(t)
	t.Setenv("ROMAN_NO_LOG", "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
	// The config location still resolves.
	assert.NotEmpty(t, HomeDir())
}

func TestSet_Errors(t *testing.T) {
	cfg := &Config{}

	assert.ErrorIs(t, cfg.Set("validator.engine", "abacus"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("log.enabled", "maybe"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("history.limit", "1001"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("history.limit", "ten"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("nope", "x"), ErrUnknownKey)

	_, err := cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestValidKeys(t *testing.T) {
	cfg := &Config{}
	for _, k := range ValidKeys() {
		assert.True(t, IsValidKey(k))
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
		assert.Contains(t, cfg.All(), k)
	}
	assert.False(t, IsValidKey("limits.max_path"))
}
