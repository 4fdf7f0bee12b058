// Package projectroot locates the root directory of the enclosing project
// and provides directory maintenance helpers that resolve against it.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// markers identify a project root: any directory containing one of these
// entries is taken to be the root.
var markers = []string{".git", "go.mod"}

// Find walks upward from start until it reaches a directory containing a
// project marker. It returns an error when the filesystem root is reached
// without a match.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no project root found above %s", start)
		}
		dir = parent
	}
}

// ClearDir removes every entry inside path, keeping the directory itself.
// A relative path resolves against the project root of the current working
// directory. Non-directories are refused.
func ClearDir(path string) error {
	dir := path
	if !filepath.IsAbs(dir) {
		root, err := Find(".")
		if err != nil {
			return err
		}
		dir = filepath.Join(root, dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}
