package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietConfig returns the example configuration with logging turned off.
func quietConfig(t *testing.T) string {
	t.Helper()
	example, err := os.ReadFile(filepath.Join("..", "..", "rope.example.yaml"))
	require.NoError(t, err)
	doc, _, found := strings.Cut(string(example), "\nlog:")
	require.True(t, found, "example configuration has no log section")
	doc += "\nlog:\n  level: error\n  output: none\n"

	path := filepath.Join(t.TempDir(), "rope.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRunConcurrentReplaysAgree(t *testing.T) {
	err := run(context.Background(), flags{
		config:     quietConfig(t),
		frames:     90,
		dt:         1.0 / 60,
		dragStart:  5,
		dragFrames: 40,
		runs:       4,
	})
	assert.NoError(t, err)
}

func TestRunRejectsBadFlags(t *testing.T) {
	err := run(context.Background(), flags{runs: 0})
	assert.Error(t, err)

	err = run(context.Background(), flags{config: filepath.Join(t.TempDir(), "missing.yaml"), runs: 1})
	assert.Error(t, err)
}
