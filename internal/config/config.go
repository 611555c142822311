package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Require   []string `toml:"require"`
	LogLevel  string   `toml:"log_level"`
	Syslog    bool     `toml:"syslog"`
	SyslogTag string   `toml:"syslog_tag"`
}

// DefaultPath is ~/.config/shellkit/config.toml (following the XDG
// config dir on each platform).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "shellkit", "config.toml")
}

// Load reads the config file at path, applying built-in defaults for
// anything the file omits. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel:  "info",
		SyslogTag: "shellkit",
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
		if cfg.SyslogTag == "" {
			cfg.SyslogTag = "shellkit"
		}
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
