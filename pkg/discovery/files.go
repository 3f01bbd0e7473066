package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// SwayFiles returns the paths of all Sway source files under root, at any
// depth. Traversal uses an explicit work-list rather than recursion, and a
// directory that cannot be read is skipped so one unreadable subtree does
// not abort the whole scan. The order of the result is not meaningful.
func SwayFiles(root string) []string {
	var files []string
	dirs := []string{root}

	for len(dirs) > 0 {
		next := dirs[len(dirs)-1]
		dirs = dirs[:len(dirs)-1]

		entries, err := os.ReadDir(next)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			path := filepath.Join(next, entry.Name())
			if entry.IsDir() {
				dirs = append(dirs, path)
			} else if IsSwayFile(path) {
				files = append(files, path)
			}
		}
	}

	return files
}

// IsSwayFile reports whether path names an existing regular file with the
// Sway source extension. The extension comparison is case-sensitive.
func IsSwayFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return strings.TrimPrefix(filepath.Ext(path), ".") == SwayExtension
}
