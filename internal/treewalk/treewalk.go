/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/

// Package treewalk enumerates the HTML documents a walker visits.
package treewalk

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// HTMLFiles returns the ".html" files under root, as slash-separated paths
// relative to root, filtered by the include/exclude doublestar patterns
// (empty include means everything). Traversal order is the deterministic
// lexical order of filepath.WalkDir. Unreadable entries are skipped.
func HTMLFiles(root string, include, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if matches(rel, include, true) && !matches(rel, exclude, false) {
			files = append(files, rel)
		}
		return nil
	})
	return files, err
}

// matches reports whether rel matches any of the patterns. An empty
// pattern list yields the given default.
func matches(rel string, patterns []string, whenEmpty bool) bool {
	if len(patterns) == 0 {
		return whenEmpty
	}
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if strings.ContainsAny(p, "*?[") {
			if ok, _ := doublestar.Match(p, rel); ok {
				return true
			}
		} else if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(rel+"/", p) {
				return true
			}
		} else if filepath.Base(rel) == p {
			return true
		}
	}
	return false
}
