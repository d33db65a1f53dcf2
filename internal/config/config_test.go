package config

import (
	"os"
	"path/filepath"
	"testing"

	"twopane/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Panes.Left)
	assert.NotEmpty(t, cfg.Tags.File)
	assert.True(t, cfg.ConfirmDelete)
	assert.False(t, cfg.Display.ShowHidden)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
panes:
  left: /mods
display:
  show_hidden: true
  hide_patterns:
    - "*.tmp"
    - "*.bak"
theme:
  accent: "#FF0000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/mods", cfg.Panes.Left)
	assert.NotEmpty(t, cfg.Panes.Right, "unset pane keeps its default")
	assert.True(t, cfg.Display.ShowHidden)
	assert.Equal(t, []string{"*.tmp", "*.bak"}, cfg.Display.HidePatterns)
	assert.Equal(t, "#FF0000", cfg.Theme.Accent)
	assert.Equal(t, "#04B575", cfg.Theme.Tag, "unset theme color keeps its default")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panes: ["), 0644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadGlob(t *testing.T) {
	cfg := New()
	cfg.Display.HidePatterns = []string{"[unterminated"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestCompiledHidePatterns(t *testing.T) {
	cfg := New()
	cfg.Display.HidePatterns = []string{"*.tmp", "DISABLED_keep_*"}

	globs := cfg.CompiledHidePatterns()
	require.Len(t, globs, 2)
	assert.True(t, globs[0].Match("junk.tmp"))
	assert.False(t, globs[0].Match("junk.txt"))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := New()
	cfg.Panes.Left = "/mods"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/mods", loaded.Panes.Left)
}
