// Package fsutil provides the path and removal helpers shell scripts
// usually get from a sourced utility library.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Abs resolves path to an absolute path. An empty path is an error
// rather than an alias for the working directory.
func Abs(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	return filepath.Abs(path)
}

// TrimTrailingSlash removes trailing slashes from path. The root "/"
// and the empty string are returned unchanged.
func TrimTrailingSlash(path string) string {
	if path == "" {
		return path
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// Exists reports whether path can be stat'd.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Remover abstracts filesystem delete operations. Mockable in tests to
// prove dry-run never deletes.
type Remover interface {
	Remove(path string) error
	RemoveAll(path string) error
}

// OSRemover deletes from the real filesystem.
type OSRemover struct{}

func (OSRemover) Remove(path string) error    { return os.Remove(path) }
func (OSRemover) RemoveAll(path string) error { return os.RemoveAll(path) }

// SafeRemove deletes path, directory trees included. It refuses the
// empty path, "/" and ".", and treats an already-absent path as
// success.
func SafeRemove(r Remover, path string) error {
	switch filepath.Clean(path) {
	case "", "/", ".":
		return fmt.Errorf("refusing to remove %q", path)
	}
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return r.RemoveAll(path)
	}
	return r.Remove(path)
}
