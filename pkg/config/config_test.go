package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[search]
default_limit = 12
fuzzy_level = 1

[state]
history_limit = 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Search.DefaultLimit)
	assert.Equal(t, 1, cfg.Search.FuzzyLevel)
	assert.Equal(t, 3, cfg.Search.MinQueryLen, "unset keys keep defaults")
	assert.Equal(t, 10, cfg.State.HistoryLimit)
	assert.Equal(t, "default", cfg.Dict.Variant)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// search.default_limit has the wrong type, so the struct decode fails,
	// but the other sections are still usable.
	path := writeConfig(t, `
[dict]
variant = "markup"

[search]
default_limit = "many"
fuzzy_level = 3
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "markup", cfg.Dict.Variant)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	assert.Equal(t, 3, cfg.Search.FuzzyLevel)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := writeConfig(t, "this is = = not toml [[")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSanitize(t *testing.T) {
	path := writeConfig(t, `
[search]
default_limit = 0
fuzzy_level = -1

[state]
history_limit = -5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Search, cfg.Search)
	assert.Equal(t, 70, cfg.State.HistoryLimit)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestStateDir(t *testing.T) {
	cfg := DefaultConfig()
	dir, err := cfg.StateDir("/etc/wordbook/config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/etc/wordbook", "data"), dir)

	cfg.State.Dir = "/var/lib/wordbook"
	dir, err = cfg.StateDir("/etc/wordbook/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/wordbook", dir)
}

func TestCorpusPathExpandsHome(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "", cfg.CorpusPath())

	cfg.Dict.Path = "~/dict.json"
	assert.NotContains(t, cfg.CorpusPath(), "~")
	assert.Equal(t, "dict.json", filepath.Base(cfg.CorpusPath()))
}
