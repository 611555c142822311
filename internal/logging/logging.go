// Package logging builds the leveled logger shared by every command.
// Entries go to stderr so stdout stays capturable by scripts; syslog
// mirroring is opt-in.
package logging

import (
	"log/syslog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"
	lsyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// Options selects the log level and output wiring.
type Options struct {
	// Level is a logrus level name (debug, info, warn, error).
	// Unknown or empty falls back to info.
	Level string
	// Syslog mirrors every entry to the local syslog daemon.
	Syslog bool
	// Tag is the syslog tag; ignored unless Syslog is set.
	Tag string
}

// New builds a logger per opts. A syslog daemon that can't be reached
// degrades to stderr-only with a warning, never a failure.
func New(opts Options) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	isTTY := term.IsTerminal(os.Stderr.Fd())
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   isTTY,
		DisableColors: !isTTY,
	})

	if opts.Syslog {
		hook, err := lsyslog.NewSyslogHook("", "", syslog.LOG_INFO|syslog.LOG_USER, opts.Tag)
		if err != nil {
			log.WithError(err).Warn("syslog unavailable, logging to stderr only")
		} else {
			log.AddHook(hook)
		}
	}

	return log
}
