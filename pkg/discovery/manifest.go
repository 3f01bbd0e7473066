package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FindNestedManifestDir searches downward from start for the nearest
// directory strictly inside the starting directory that contains a Forc
// manifest.
func FindNestedManifestDir(start string) (string, bool) {
	return FindNestedDirWithFile(start, ManifestFileName)
}

// FindNestedDirWithFile searches the subtree rooted at start for an entry
// named fileName and returns the directory containing the first match in
// traversal order. An occurrence directly inside the starting directory
// is skipped: the search is for a nested occurrence only. When start is
// not a directory, its parent is the effective starting directory.
// Unreadable entries are skipped.
func FindNestedDirWithFile(start, fileName string) (string, bool) {
	starterDir := start
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		parent := filepath.Dir(start)
		if parent == start {
			return "", false
		}
		starterDir = parent
	}
	selfMatch := filepath.Join(starterDir, fileName)

	var found string
	_ = filepath.WalkDir(starterDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Name() == fileName && path != selfMatch {
			found = filepath.Dir(path)
			return filepath.SkipAll
		}
		return nil
	})

	if found == "" {
		return "", false
	}
	return found, true
}

// FindParentDirWithFile walks upward from start toward the filesystem root
// and returns the first directory level at which fileName exists. The
// starting path is canonicalized first; if canonicalization fails (for
// example, start does not exist) the result is absent. The filesystem root
// itself is never tested, and the walk never goes above it.
func FindParentDirWithFile(start, fileName string) (string, bool) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}

	for {
		parent := filepath.Dir(path)
		if parent == path {
			return "", false
		}
		if _, err := os.Stat(filepath.Join(path, fileName)); err == nil {
			return path, true
		}
		path = parent
	}
}

// FindParentManifestDir walks upward from start and returns the first
// ancestor directory that directly contains a Forc manifest.
func FindParentManifestDir(start string) (string, bool) {
	return FindParentDirWithFile(start, ManifestFileName)
}

// FindParentManifestDirWithCheck walks upward like FindParentManifestDir
// but only accepts a manifest directory for which check returns true. A
// rejected directory restarts the search from one level above it, so the
// result is the nearest ancestor manifest directory satisfying check, or
// absent when no accepted ancestor remains.
func FindParentManifestDirWithCheck(start string, check func(dir string) bool) (string, bool) {
	for {
		dir, ok := FindParentManifestDir(start)
		if !ok {
			return "", false
		}
		if check(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		start = parent
	}
}
