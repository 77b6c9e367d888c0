/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/

// Package promote moves a freshly built documentation tree into place as
// the "latest" alias and snapshots it under its version name.
package promote

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LatestDirName is the stable alias directory for the current version.
const LatestDirName = "latest"

// Promote replaces base/latest with source and clears any stale directory
// named after the incoming version. The source directory must exist;
// callers verify that before any mutation happens.
func Promote(base, source, version string) error {
	latest := filepath.Join(base, LatestDirName)
	if _, err := os.Stat(latest); err == nil {
		if err := os.RemoveAll(latest); err != nil {
			return fmt.Errorf("removing stale latest: %w", err)
		}
	}

	if err := os.Rename(source, latest); err != nil {
		return fmt.Errorf("promoting %s: %w", source, err)
	}

	versioned := filepath.Join(base, version)
	if _, err := os.Stat(versioned); err == nil {
		if err := os.RemoveAll(versioned); err != nil {
			return fmt.Errorf("removing stale version directory: %w", err)
		}
	}
	return nil
}

// Snapshot copies base/latest to base/version so the versioned tree keeps
// the canonical links and redirects stamped into latest.
func Snapshot(base, version string) error {
	return copyTree(filepath.Join(base, LatestDirName), filepath.Join(base, version))
}

// copyTree recursively copies src to dst, preserving file modes.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(target, info.Mode()&fs.ModePerm|0o700)
		}
		return copyFile(path, target, info.Mode()&fs.ModePerm)
	})
}

func copyFile(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
