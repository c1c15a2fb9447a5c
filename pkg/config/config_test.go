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

	assert.Equal(t, "> ", cfg.Prompt.Text)
	assert.Equal(t, []string{"q", "quit", "exit"}, cfg.CLI.ExitWords)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.True(t, cfg.Server.EnableFilter)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// The file exists now and round-trips.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[prompt]
text = "$ "
color = "5"

[completion]
limit = 12

[cli]
exit_words = ["bye"]

[server]
max_limit = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "$ ", cfg.Prompt.Text)
	assert.Equal(t, "5", cfg.Prompt.Color)
	assert.Equal(t, 12, cfg.Completion.Limit)
	assert.Equal(t, []string{"bye"}, cfg.CLI.ExitWords)
	assert.Equal(t, 10, cfg.Server.MaxLimit)
	// Untouched fields keep their defaults.
	assert.Equal(t, "  ", cfg.Completion.Indent)
	assert.Equal(t, 256, cfg.Server.MaxPrefix)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	// A broken file must still produce a usable config instead of an error.
	content := "[prompt]\ntext = \"% \"\n\n[completion\nlimit = oops\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.CLI.ExitWords)
}
