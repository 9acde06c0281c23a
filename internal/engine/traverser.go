package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/fsutil"
)

// ResolveScenePath returns the scene file named by path. A directory must
// hold exactly one scene file, at any depth.
func ResolveScenePath(ctx context.Context, path string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving scene path.", "path", path)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("scene path not found: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if !info.IsDir() {
		logger.Debug("Path is a single file.", "file", path)
		if !fsutil.IsSceneFile(path) {
			return "", fmt.Errorf("specified file is not a scene file (%v): %s", fsutil.SceneExtensions, path)
		}
		return path, nil
	}

	logger.Debug("Path is a directory, scanning for scene files.", "directory", path)
	found, err := fsutil.FindSceneFiles(path)
	if err != nil {
		return "", fmt.Errorf("error scanning %s: %w", path, err)
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no scene file found in %s", path)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("directory %s holds %d scene files, expected one: %v", path, len(found), found)
	}
}
