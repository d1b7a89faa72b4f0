package calc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "calc.toml"

// Config represents a calc.toml configuration file.
type Config struct {
	// History enables the history log. Defaults to true when unset.
	History *bool `toml:"history,omitempty"`

	// ShowHistory opens the history panel when the keypad starts.
	ShowHistory bool `toml:"show_history,omitempty"`

	// Theme overrides keypad colours. Values are terminal colour strings
	// such as "63" or "#7D56F4".
	Theme Theme `toml:"theme,omitempty"`
}

type Theme struct {
	Accent string `toml:"accent,omitempty"`
	Dim    string `toml:"dim,omitempty"`
	Error  string `toml:"error,omitempty"`
}

// HistoryEnabled reports whether completed calculations are recorded.
func (c Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// LoadConfig loads a calc.toml file from the given path. Unknown keys are
// an error so that typos don't go unnoticed.
func LoadConfig(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &config, nil
}

// FindConfig searches for calc.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. If none is found there
// it falls back to $XDG_CONFIG_HOME/calc/calc.toml. Returns "" if no file
// exists.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if path := userConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// ResolveConfig loads the config at explicit if given, otherwise the one
// FindConfig discovers from dir. With no file at all it returns the
// defaults and an empty path.
func ResolveConfig(explicit, dir string) (string, *Config, error) {
	path := explicit
	if path == "" {
		found, err := FindConfig(dir)
		if err != nil {
			return "", nil, err
		}
		path = found
	}
	if path == "" {
		return "", &Config{}, nil
	}
	config, err := LoadConfig(path)
	if err != nil {
		return "", nil, err
	}
	return path, config, nil
}

// userConfigPath respects XDG_CONFIG_HOME (default ~/.config/calc/calc.toml).
func userConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "calc", ConfigFileName)
}
