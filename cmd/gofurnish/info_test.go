package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.obj")
	src := "v 0 0 0\nv 1 0 0\nv 1 1 3\ng wall_0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	flags := infoCmd.Flags()
	require.NoError(t, flags.Set("tallest", "1"))

	require.NoError(t, flags.Set("category", "door"))
	assert.ErrorContains(t, runInfo(infoCmd, []string{path}), "invalid category")

	require.NoError(t, flags.Set("category", "wall"))
	assert.NoError(t, runInfo(infoCmd, []string{path}))

	assert.Error(t, runInfo(infoCmd, []string{filepath.Join(t.TempDir(), "missing.obj")}))
}
