// Package pathsearch resolves bare command names against an explicit,
// ordered list of directories. Unlike exec.LookPath it reads no ambient
// process state, so callers control exactly which search path a lookup
// sees.
package pathsearch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that no directory in the search path contains an
// executable with the requested name.
var ErrNotFound = errors.New("executable not found in search path")

// Resolver resolves command names against Dirs in order. A zero
// Resolver has an empty search path and resolves nothing.
type Resolver struct {
	Dirs []string
}

// FromEnv builds a Resolver from a PATH-style string. An empty string
// yields an empty resolver. Empty entries mean the current directory,
// per POSIX.
func FromEnv(path string) *Resolver {
	if path == "" {
		return &Resolver{}
	}
	var dirs []string
	for _, dir := range strings.Split(path, string(os.PathListSeparator)) {
		if dir == "" {
			dir = "."
		}
		dirs = append(dirs, dir)
	}
	return &Resolver{Dirs: dirs}
}

// LookPath returns the full path of the first executable named name in
// the search path. Only bare names are accepted; anything containing a
// path separator is an error.
func (r *Resolver) LookPath(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty command name")
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		return "", fmt.Errorf("%q: bare command name required", name)
	}
	for _, dir := range r.Dirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// isExecutable reports whether path is a regular file with any execute
// bit set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
