package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsFrames(t *testing.T) {
	t.Parallel()

	scene := `
background = "#102030"
layer {
  label {
    text = "frame ${frame}"
  }
}
`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(scene), 0600))

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"--frames", "2", "--fps", "500", "--log-level", "error", filePath})

	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out.String(), "background=#102030ff"))
	require.Contains(t, out.String(), `label "frame 0"`)
	require.Contains(t, out.String(), `label "frame 1"`)
}

func TestRun_MissingScene(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{filepath.Join(t.TempDir(), "missing.hcl")})

	require.Error(t, err)
	require.Contains(t, err.Error(), "scene path not found")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
