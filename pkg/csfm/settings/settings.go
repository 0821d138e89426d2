package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configDirName = "csdesktop"
const configFileName = "csfm.yaml"

var osUserConfigDir = os.UserConfigDir
var osReadFile = os.ReadFile

// Bookmark is a named shortcut to a filesystem path shown in the
// sidebar. Bookmarks are loaded once and are not editable at runtime.
type Bookmark struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

// Config is the user configuration. It is read-only after load; a
// hot reload replaces the whole value.
type Config struct {
	Theme           string     `yaml:"theme"`
	ShowHiddenFiles bool       `yaml:"show_hidden_files"`
	Bookmarks       []Bookmark `yaml:"sidebar_loc"`
}

func Default() Config {
	return Config{Theme: "gruvbox-dark"}
}

func ConfigFilePath() (string, error) {
	dir, err := osUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the user configuration from the fixed config location.
// A missing, unreadable or malformed file is not fatal: the returned
// Config is always usable, and a non-nil error describes what went
// wrong so the caller can surface a warning.
func Load() (Config, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return Default(), fmt.Errorf("user config dir is unknown: %w", err)
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	data, err := osReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), fmt.Errorf("no config at %s, using defaults: %w", path, err)
		}
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("malformed config %s: %w", path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}
	return cfg, nil
}
