package cmd

import (
	"github.com/frostyard/shellkit/internal/config"
	"github.com/frostyard/shellkit/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	logLevel  string
	useSyslog bool
)

var rootCmd = &cobra.Command{
	Use:   "shellkit",
	Short: "Reusable helpers for shell scripts",
}

func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/shellkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&useSyslog, "syslog", false, "mirror log output to syslog")
}

// loadConfig resolves the effective config path and loads it.
func loadConfig() (*config.Config, string, error) {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

// newLogger builds the command logger from config, with flags taking
// precedence.
func newLogger(cfg *config.Config) *logrus.Logger {
	opts := logging.Options{
		Level:  cfg.LogLevel,
		Syslog: cfg.Syslog,
		Tag:    cfg.SyslogTag,
	}
	if logLevel != "" {
		opts.Level = logLevel
	}
	if useSyslog {
		opts.Syslog = true
	}
	return logging.New(opts)
}
