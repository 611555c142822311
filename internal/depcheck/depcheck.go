// Package depcheck reports which of a script's required external
// commands are missing from its environment.
package depcheck

import (
	"fmt"
	"strings"

	"github.com/frostyard/shellkit/internal/runner"
)

// Result is the outcome of a single Check call. Missing preserves the
// input order, duplicates included.
type Result struct {
	Missing []string
}

// OK reports whether every requested command resolved.
func (r Result) OK() bool {
	return len(r.Missing) == 0
}

// Line renders the missing names as a single whitespace-joined line,
// the form scripts capture from stdout.
func (r Result) Line() string {
	return strings.Join(r.Missing, " ")
}

// Err returns a MissingError for the missing names, or nil when all
// commands resolved.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &MissingError{Names: r.Missing}
}

// MissingError aggregates every command name that failed to resolve.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("missing required command: %s", e.Names[0])
	}
	return fmt.Sprintf("missing required commands: %s", strings.Join(e.Names, " "))
}

// Check resolves each name through r and collects the ones that fail,
// preserving input order. It never deduplicates and caches nothing
// between calls; the searched environment may change, so every call
// recomputes from scratch.
func Check(r runner.Runner, names []string) Result {
	var missing []string
	for _, name := range names {
		if _, err := r.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	return Result{Missing: missing}
}
