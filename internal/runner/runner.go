// Package runner is the seam between command-name resolution and the
// real process environment.
package runner

import "os/exec"

// Runner resolves a bare command name to an executable path. Mockable
// for tests; pathsearch.Resolver satisfies it too.
type Runner interface {
	// LookPath checks if a command is resolvable, returning its path.
	LookPath(name string) (string, error)
}

// SystemRunner resolves against the live process PATH.
type SystemRunner struct{}

func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
