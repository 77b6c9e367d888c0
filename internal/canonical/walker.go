/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package canonical

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docfoundry/docpromote/internal/treewalk"
	"github.com/docfoundry/docpromote/pkg/logger"
	"github.com/docfoundry/docpromote/pkg/safeio"
)

// WalkOptions configures a canonical stamping walk over one version tree.
type WalkOptions struct {
	// Base is the documentation base directory holding the version trees.
	Base string
	// VersionDir is the tree being stamped (an immediate child of Base).
	VersionDir string
	// Label is the directory name used in the rendered canonical URL
	// ("latest", or a previous version's name).
	Label string
	// AbsoluteURLs selects root-anchored URLs over relative ones.
	AbsoluteURLs bool
	// Include and Exclude filter visited files (doublestar patterns).
	Include []string
	Exclude []string
}

// WalkStats summarizes one walk.
type WalkStats struct {
	Stamped   int
	Redirects int
	Skipped   int
	Failed    int
}

// StampTree stamps every HTML document under opts.VersionDir with a
// canonical link. Per-document failures are logged and do not halt the
// walk.
func StampTree(opts WalkOptions) (WalkStats, error) {
	var stats WalkStats

	files, err := treewalk.HTMLFiles(opts.VersionDir, opts.Include, opts.Exclude)
	if err != nil {
		return stats, fmt.Errorf("walking %s: %w", opts.VersionDir, err)
	}

	for _, rel := range files {
		file := filepath.Join(opts.VersionDir, filepath.FromSlash(rel))
		switch err := StampFile(opts, file); {
		case errors.Is(err, ErrMissingHeadClose):
			logger.Warn(fmt.Sprintf("Unable to update canonical link for %s due to missing </head> tag", file))
			stats.Skipped++
		case errors.Is(err, errIsRedirect):
			stats.Redirects++
		case err != nil:
			logger.Error("Failed to stamp canonical link", logger.String("file", file), logger.Err(err))
			stats.Failed++
		default:
			stats.Stamped++
		}
	}

	logger.Debug("Canonical walk finished",
		logger.String("dir", opts.VersionDir),
		logger.Int("stamped", stats.Stamped),
		logger.Int("skipped", stats.Skipped))
	return stats, nil
}

// errIsRedirect is internal to the walker: redirect pages are a recognized
// no-op, counted but never logged as failures.
var errIsRedirect = errors.New("document is a redirect page")

// StampFile stamps a single document. The whole document is held in
// memory, transformed, and rewritten as one complete write; an interruption
// before that write leaves the original untouched.
func StampFile(opts WalkOptions, file string) error {
	_, url := SiblingURL(opts.Base, file, opts.VersionDir, opts.Label)
	if opts.AbsoluteURLs {
		url = AbsoluteURL(opts.Base, file)
	}

	data, err := safeio.ReadFileContained(opts.Base, file)
	if err != nil {
		return err
	}

	lines, changed, err := Apply(SplitLines(string(data)), Tag(url))
	if err != nil {
		return err
	}
	if !changed {
		return errIsRedirect
	}

	return safeio.WriteFilePreservePerms(file, []byte(strings.Join(lines, "")))
}
