package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "FORMALIZED_MODEL", "FORMALIZED_STRATEGY", "FORMALIZED_THEME"} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	timeout, err := cfg.RemoteTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "formalized.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: remote
remote:
  model: gemini-2.5-flash
  timeout: 5s
  sanitize: false
ui:
  theme: dark
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyRemote, cfg.Strategy)
	assert.Equal(t, "gemini-2.5-flash", cfg.Remote.Model)
	assert.False(t, cfg.Remote.Sanitize)
	assert.Equal(t, ThemeDark, cfg.UI.Theme)
	// Untouched sections keep their defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "formalized.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy = "rules"

[server]
port = 9090
warm_up = false

[logging]
backend = "zap"
debug = true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Server.WarmUp)
	assert.Equal(t, "zap", cfg.Logging.Backend)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cases := map[string]string{
		"strategy": "strategy: telepathy\n",
		"timeout":  "remote:\n  timeout: soon\n",
		"theme":    "ui:\n  theme: sepia\n",
		"port":     "server:\n  port: 70000\n",
		"syntax":   "strategy: [unterminated\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY wins over GOOGLE_API_KEY", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GOOGLE_API_KEY", "google-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "gemini-key", cfg.Remote.APIKey)
	})

	t.Run("GOOGLE_API_KEY alone", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GOOGLE_API_KEY", "google-key")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "google-key", cfg.Remote.APIKey)
	})

	t.Run("strategy model and theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("FORMALIZED_STRATEGY", "REMOTE")
		t.Setenv("FORMALIZED_MODEL", "gemini-x")
		t.Setenv("FORMALIZED_THEME", "Light")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, StrategyRemote, cfg.Strategy)
		assert.Equal(t, "gemini-x", cfg.Remote.Model)
		assert.Equal(t, ThemeLight, cfg.UI.Theme)
	})
}

func TestSaveOmitsAPIKey(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "formalized.yaml")

	cfg := DefaultConfig()
	cfg.Remote.APIKey = "secret"
	require.NoError(t, cfg.Save(path))
	assert.Equal(t, "secret", cfg.Remote.APIKey)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Remote.Model, loaded.Remote.Model)
	assert.Empty(t, loaded.Remote.APIKey)
}
