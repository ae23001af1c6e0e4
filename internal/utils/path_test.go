package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileUsesGivenConfigDir(t *testing.T) {
	configDir := t.TempDir()
	corpus := filepath.Join(configDir, "data", "wordbook-corpus-test.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(corpus), 0o755))
	require.NoError(t, os.WriteFile(corpus, []byte("[]"), 0o644))

	pr, err := NewPathResolver(configDir)
	require.NoError(t, err)

	assert.Equal(t, corpus, pr.ResolveFile("wordbook-corpus-test.json"))
	assert.Equal(t, configDir, pr.GetRuntimeInfo()["config_dir"])
}

func TestResolveFileFallsBackToGivenPath(t *testing.T) {
	pr, err := NewPathResolver(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "missing-corpus.json", pr.ResolveFile("missing-corpus.json"))

	abs := filepath.Join(t.TempDir(), "abs.json")
	assert.Equal(t, abs, pr.ResolveFile(abs))
}
