/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package canonical

import (
	"path"
	"path/filepath"
	"strings"
)

// SiblingURL relates two parallel version trees under base. target is a
// file inside versionDir (an immediate child of base); siblingName is the
// name of another immediate child of base holding the parallel copy. It
// returns the sibling file's path and the URL that ascends from the
// sibling's location back to base before descending to target: one ".."
// per path segment of the sibling's base-relative path, separators kept as
// separators. A base-relative path with no segments degrades to an empty
// prefix. Inputs that do not share the documented ancestor relationship
// produce an incorrect but non-crashing URL.
func SiblingURL(base, target, versionDir, siblingName string) (siblingPath, url string) {
	rel, err := filepath.Rel(versionDir, target)
	if err != nil {
		rel = target
	}
	siblingPath = filepath.Join(base, siblingName, rel)

	siblingRel, err := filepath.Rel(base, siblingPath)
	if err != nil {
		siblingRel = siblingPath
	}
	targetRel, err := filepath.Rel(base, target)
	if err != nil {
		targetRel = target
	}

	url = path.Join(ascent(siblingRel), filepath.ToSlash(targetRel))
	return siblingPath, url
}

// AbsoluteURL renders target as a root-anchored URL path relative to base.
func AbsoluteURL(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		rel = target
	}
	return "/" + filepath.ToSlash(rel)
}

// ascent replaces every segment of a relative path with "..".
func ascent(rel string) string {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return ""
	}
	segments := strings.Split(rel, "/")
	for i := range segments {
		segments[i] = ".."
	}
	return strings.Join(segments, "/")
}
