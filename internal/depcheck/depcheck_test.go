package depcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/frostyard/shellkit/internal/pathsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	available map[string]bool
}

func (m *mockRunner) LookPath(name string) (string, error) {
	if m.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("not found: %s", name)
}

func TestCheckAllPresent(t *testing.T) {
	r := &mockRunner{available: map[string]bool{"ls": true, "cat": true}}
	res := Check(r, []string{"ls", "cat"})
	assert.True(t, res.OK())
	assert.Empty(t, res.Missing)
	assert.NoError(t, res.Err())
}

func TestCheckEmptyInput(t *testing.T) {
	res := Check(&mockRunner{}, nil)
	assert.True(t, res.OK())
	assert.Empty(t, res.Missing)
}

func TestCheckSomeMissing(t *testing.T) {
	r := &mockRunner{available: map[string]bool{"ls": true}}
	res := Check(r, []string{"ls", "nonexistent_cmd_12345"})
	assert.False(t, res.OK())
	assert.Equal(t, []string{"nonexistent_cmd_12345"}, res.Missing)
	assert.EqualError(t, res.Err(), "missing required command: nonexistent_cmd_12345")
}

func TestCheckPreservesOrder(t *testing.T) {
	r := &mockRunner{available: map[string]bool{"b": true}}
	res := Check(r, []string{"c", "b", "a"})
	assert.Equal(t, []string{"c", "a"}, res.Missing)
}

func TestCheckPreservesDuplicates(t *testing.T) {
	res := Check(&mockRunner{}, []string{"nonexistent_x", "nonexistent_x"})
	assert.Equal(t, []string{"nonexistent_x", "nonexistent_x"}, res.Missing)
}

func TestCheckMissingIsSubsetOfInput(t *testing.T) {
	input := []string{"one", "two", "three"}
	res := Check(&mockRunner{available: map[string]bool{"two": true}}, input)
	assert.Subset(t, input, res.Missing)
}

func TestCheckWithExplicitSearchPath(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "mytool"), []byte("#!/bin/sh\n"), 0o755)
	require.NoError(t, err)

	res := Check(&pathsearch.Resolver{Dirs: []string{dir}}, []string{"mytool", "othertool"})
	assert.Equal(t, []string{"othertool"}, res.Missing)
}

func TestCheckEmptySearchPathReportsAllMissing(t *testing.T) {
	res := Check(pathsearch.FromEnv(""), []string{"ls", "cat"})
	assert.Equal(t, []string{"ls", "cat"}, res.Missing)
}

func TestResultLine(t *testing.T) {
	res := Result{Missing: []string{"curl", "jq"}}
	assert.Equal(t, "curl jq", res.Line())
	assert.Equal(t, "", Result{}.Line())
}

func TestMissingErrorPlural(t *testing.T) {
	err := &MissingError{Names: []string{"curl", "jq"}}
	assert.EqualError(t, err, "missing required commands: curl jq")
}
