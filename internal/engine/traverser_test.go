package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/livegrid/internal/testutil"
)

func TestResolveScenePath(t *testing.T) {
	ctx, _ := testutil.Context(t)

	write := func(t *testing.T, path string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("layer {}\n"), 0o644))
	}

	t.Run("file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "scene.yaml")
		write(t, p)
		got, err := ResolveScenePath(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("wrong extension", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "scene.txt")
		write(t, p)
		_, err := ResolveScenePath(ctx, p)
		require.ErrorContains(t, err, "not a scene file")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ResolveScenePath(ctx, filepath.Join(t.TempDir(), "nope.hcl"))
		require.ErrorContains(t, err, "not found")
	})

	t.Run("directory with one scene", func(t *testing.T) {
		dir := t.TempDir()
		p := filepath.Join(dir, "nested", "main.hcl")
		write(t, p)
		got, err := ResolveScenePath(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("directory with two scenes", func(t *testing.T) {
		dir := t.TempDir()
		write(t, filepath.Join(dir, "a.hcl"))
		write(t, filepath.Join(dir, "b.yml"))
		_, err := ResolveScenePath(ctx, dir)
		require.ErrorContains(t, err, "expected one")
	})

	t.Run("editor backups are ignored", func(t *testing.T) {
		dir := t.TempDir()
		p := filepath.Join(dir, "main.hcl")
		write(t, p)
		write(t, filepath.Join(dir, "main.hcl~"))
		write(t, filepath.Join(dir, ".git", "old.hcl"))
		got, err := ResolveScenePath(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := ResolveScenePath(ctx, t.TempDir())
		require.ErrorContains(t, err, "no scene file")
	})
}
