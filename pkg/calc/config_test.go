package calc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		path := filepath.Join(dir, "empty.toml")
		writeFile(t, path, "")
		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, config.HistoryEnabled())
		assert.False(t, config.ShowHistory)
		assert.Empty(t, config.Theme.Accent)
	})

	t.Run("full", func(t *testing.T) {
		path := filepath.Join(dir, "full.toml")
		writeFile(t, path, `
history = false
show_history = true

[theme]
accent = "#7D56F4"
dim = "241"
error = "196"
`)
		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.False(t, config.HistoryEnabled())
		assert.True(t, config.ShowHistory)
		assert.Equal(t, Theme{Accent: "#7D56F4", Dim: "241", Error: "196"}, config.Theme)
	})

	t.Run("unknown keys", func(t *testing.T) {
		path := filepath.Join(dir, "typo.toml")
		writeFile(t, path, "histroy = true\n")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "unknown keys: histroy")
	})

	t.Run("syntax error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		writeFile(t, path, "history = \n")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "parsing "+path)
	})
}

func TestFindConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))

	t.Run("walks up to the nearest file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
		writeFile(t, filepath.Join(root, "a", ConfigFileName), "")
		nested := filepath.Join(root, "a", "b", "c")
		require.NoError(t, os.MkdirAll(nested, 0755))

		path, err := FindConfig(nested)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "a", ConfigFileName), path)
	})

	t.Run("stops at the repository boundary", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ConfigFileName), "")
		repo := filepath.Join(root, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

		path, err := FindConfig(repo)
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("falls back to the user config", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		writeFile(t, filepath.Join(xdg, "calc", ConfigFileName), "show_history = true\n")

		repo := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

		path, config, err := ResolveConfig("", repo)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(xdg, "calc", ConfigFileName), path)
		assert.True(t, config.ShowHistory)
	})
}

func TestResolveConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

	path, config, err := ResolveConfig("", repo)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, &Config{}, config)

	explicit := filepath.Join(t.TempDir(), "other.toml")
	writeFile(t, explicit, "history = false\n")
	path, config, err = ResolveConfig(explicit, repo)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.False(t, config.HistoryEnabled())

	_, _, err = ResolveConfig(filepath.Join(repo, "missing.toml"), repo)
	assert.Error(t, err)
}
