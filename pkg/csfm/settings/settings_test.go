package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csfm.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("full_config", func(t *testing.T) {
		path := writeConfig(t, `
theme: dracula
show_hidden_files: true
sidebar_loc:
  - title: Home
    path: /home/user
  - title: Projects
    path: ~/projects
`)
		cfg, err := LoadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "dracula", cfg.Theme)
		assert.True(t, cfg.ShowHiddenFiles)
		assert.Equal(t, []Bookmark{
			{Title: "Home", Path: "/home/user"},
			{Title: "Projects", Path: "~/projects"},
		}, cfg.Bookmarks)
	})

	t.Run("missing_fields_default", func(t *testing.T) {
		path := writeConfig(t, "theme: gruvbox-dark\n")
		cfg, err := LoadFile(path)
		assert.NoError(t, err)
		assert.False(t, cfg.ShowHiddenFiles)
		assert.Equal(t, 0, len(cfg.Bookmarks))
	})

	t.Run("empty_theme_defaults", func(t *testing.T) {
		path := writeConfig(t, "show_hidden_files: true\n")
		cfg, err := LoadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "gruvbox-dark", cfg.Theme)
	})

	t.Run("missing_file_warns_and_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")
		cfg, err := LoadFile(path)
		assert.Error(t, err)
		assert.IsError(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("malformed_file_warns_and_defaults", func(t *testing.T) {
		path := writeConfig(t, "theme: [unterminated\n  nonsense: {{")
		cfg, err := LoadFile(path)
		assert.Error(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, 0, len(cfg.Bookmarks))
		assert.False(t, cfg.ShowHiddenFiles)
	})
}

func TestLoad(t *testing.T) {
	origUserConfigDir := osUserConfigDir
	defer func() { osUserConfigDir = origUserConfigDir }()

	t.Run("reads_fixed_location", func(t *testing.T) {
		dir := t.TempDir()
		osUserConfigDir = func() (string, error) { return dir, nil }
		assert.NoError(t, os.MkdirAll(filepath.Join(dir, configDirName), 0o755))
		assert.NoError(t, os.WriteFile(
			filepath.Join(dir, configDirName, configFileName),
			[]byte("theme: dracula\n"), 0o644))

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "dracula", cfg.Theme)
	})

	t.Run("config_dir_unknown", func(t *testing.T) {
		osUserConfigDir = func() (string, error) { return "", errors.New("no config dir") }
		cfg, err := Load()
		assert.Error(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestConfigFilePath(t *testing.T) {
	origUserConfigDir := osUserConfigDir
	defer func() { osUserConfigDir = origUserConfigDir }()

	osUserConfigDir = func() (string, error) { return "/home/u/.config", nil }
	path, err := ConfigFilePath()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.config", "csdesktop", "csfm.yaml"), path)
}
