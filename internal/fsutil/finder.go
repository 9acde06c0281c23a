// Package fsutil finds scene files on disk.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// SceneExtensions are the file extensions a scene may use.
var SceneExtensions = []string{".hcl", ".yaml", ".yml"}

// IsSceneFile reports whether name has a scene extension and is not an
// editor backup or lock file.
func IsSceneFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return slices.Contains(SceneExtensions, strings.ToLower(filepath.Ext(base)))
}

// FindSceneFiles recursively searches rootPath for scene files and returns
// their full paths, sorted. Hidden directories such as .git are skipped.
func FindSceneFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != rootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSceneFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
