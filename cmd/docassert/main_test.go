package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	actual := writeFile(t, dir, "actual.json", `{"id": 1, "name": "John", "tags": ["b", "a"], "extra": true}`)
	expected := writeFile(t, dir, "expected.json", `{"id": 2, "name": "John", "tags": ["a", "b"]}`)
	rules := writeFile(t, dir, "rules.yaml", "mode: inclusive\nignore_order:\n  - $.tags\n")

	tests := []struct {
		name     string
		args     []string
		exitCode int
		contains string
	}{
		{
			name:     "strict finds everything",
			args:     []string{"diff", actual, expected},
			exitCode: exitDiff,
			contains: `json atoms at path "$.id" are not equal`,
		},
		{
			name:     "ignored paths",
			args:     []string{"diff", actual, expected, "--ignore", "$.id", "--ignore", "$.extra", "--ignore-order", "$.tags"},
			exitCode: exitNoDiff,
		},
		{
			name:     "rules file",
			args:     []string{"diff", actual, expected, "--rules", rules, "--ignore", "$.id"},
			exitCode: exitNoDiff,
		},
		{
			name:     "flags override the rules file",
			args:     []string{"diff", actual, expected, "--rules", rules, "--ignore", "$.id", "--mode", "strict"},
			exitCode: exitDiff,
			contains: `json atom at path "$.extra" is missing from expected`,
		},
		{
			name:     "invalid ignore path",
			args:     []string{"diff", actual, expected, "--ignore", "id"},
			exitCode: exitTroubles,
		},
		{
			name:     "invalid mode",
			args:     []string{"diff", actual, expected, "--mode", "fuzzy"},
			exitCode: exitTroubles,
		},
		{
			name:     "missing file",
			args:     []string{"diff", actual, filepath.Join(dir, "nope.json")},
			exitCode: exitTroubles,
		},
		{
			name:     "wrong number of arguments",
			args:     []string{"diff", actual},
			exitCode: exitTroubles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			assert.Equal(t, tt.exitCode, exitCode(err), "output: %s, err: %v", out, err)
			if tt.contains != "" {
				assert.Contains(t, out, tt.contains)
			}
		})
	}
}

func TestDiffCommandAssumeFloat(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"n": 1}`)
	b := writeFile(t, dir, "b.json", `{"n": 1.0}`)

	_, err := run(t, "diff", a, b)
	assert.Equal(t, exitDiff, exitCode(err))

	_, err = run(t, "diff", a, b, "--assume-float")
	assert.Equal(t, exitNoDiff, exitCode(err))
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "path", "$.items[*].tags[1:3]")
	require.NoError(t, err)
	assert.Contains(t, out, "$.items[*].tags[1:3]")
	assert.Contains(t, out, "any-index")
	assert.Contains(t, out, "range")

	_, err = run(t, "path", "$.items[")
	assert.Error(t, err)
	assert.Equal(t, exitTroubles, exitCode(err))
}

func TestGetCommand(t *testing.T) {
	doc := writeFile(t, t.TempDir(), "doc.json", `{"user": {"roles": ["admin", "dev"]}}`)

	out, err := run(t, "get", doc, "$.user.roles[1]")
	require.NoError(t, err)
	assert.Equal(t, "\"dev\"\n", out)

	_, err = run(t, "get", doc, "$.user.email")
	assert.Error(t, err)

	_, err = run(t, "get", doc, "$.user.roles[*]")
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "diff")
	assert.Contains(t, out, "path")
	assert.Contains(t, out, "get")
}
