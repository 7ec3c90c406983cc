package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Search.MinQueryLen)
	assert.Equal(t, 100, cfg.Search.MaxQueryLen)
	assert.Equal(t, 0.1, cfg.Search.ScoreThreshold)
	assert.Equal(t, 0.01, cfg.Search.TieEpsilon)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 100, cfg.Search.CacheCapacity)
	assert.Equal(t, 6, cfg.Suggest.MaxSuggestions)
	assert.Equal(t, 2, cfg.Suggest.CategoryCap)
	assert.NotEmpty(t, cfg.Suggest.Popular)
	assert.Equal(t, 200, cfg.CLI.DebounceMs)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
max_results = 5
score_threshold = 0.2

[suggest]
popular = ["synergy"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	assert.Equal(t, 0.2, cfg.Search.ScoreThreshold)
	assert.Equal(t, []string{"synergy"}, cfg.Suggest.Popular)
	// Untouched keys keep defaults.
	assert.Equal(t, 100, cfg.Search.MaxQueryLen)
	assert.Equal(t, 200, cfg.CLI.DebounceMs)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// A broken file never fails the load; whatever cannot be salvaged
	// falls back to defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
max_results = 3

[cli
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.CLI.DebounceMs)
	assert.Equal(t, 0.1, cfg.Search.ScoreThreshold)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// A second init reads the file it just wrote.
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Search.MaxResults = 7
	cfg.Dict.Path = "/data/buzzwords.toml"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
