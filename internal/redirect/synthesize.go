/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package redirect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docfoundry/docpromote/internal/canonical"
	"github.com/docfoundry/docpromote/internal/treewalk"
	"github.com/docfoundry/docpromote/pkg/logger"
	"github.com/docfoundry/docpromote/pkg/safeio"
)

// Options configures redirect synthesis for one previous version.
type Options struct {
	// Base is the documentation base directory.
	Base string
	// CurrentDirName is the directory holding the current version
	// (normally "latest" at this stage of the pipeline).
	CurrentDirName string
	// PreviousDirName is the directory holding the previous version.
	PreviousDirName string
	// CurrentVersion is the human-readable name of the current version,
	// used in the redirect page body.
	CurrentVersion string
	// Product optionally qualifies the version in the page body.
	Product string
	// AbsoluteURLs selects root-anchored target URLs over relative ones.
	AbsoluteURLs bool
	// DelaySeconds is the meta-refresh delay.
	DelaySeconds int
	// Include and Exclude filter visited files (doublestar patterns).
	Include []string
	Exclude []string
}

// Stats summarizes one synthesis walk.
type Stats struct {
	Created int
	Existed int
	Failed  int
}

// SynthesizeTree walks every HTML document of the previous version and
// backfills a redirect page under the current version for each one whose
// destination path is vacant. Per-document failures are logged and do not
// halt the walk.
func SynthesizeTree(opts Options) (Stats, error) {
	var stats Stats

	previousDir := filepath.Join(opts.Base, opts.PreviousDirName)
	files, err := treewalk.HTMLFiles(previousDir, opts.Include, opts.Exclude)
	if err != nil {
		return stats, fmt.Errorf("walking %s: %w", previousDir, err)
	}

	for _, rel := range files {
		prevFile := filepath.Join(previousDir, filepath.FromSlash(rel))
		created, err := SynthesizeFile(opts, prevFile)
		switch {
		case err != nil:
			logger.Error("Failed to synthesize redirect", logger.String("file", prevFile), logger.Err(err))
			stats.Failed++
		case created:
			stats.Created++
		default:
			stats.Existed++
		}
	}

	logger.Debug("Redirect walk finished",
		logger.String("dir", previousDir),
		logger.Int("created", stats.Created),
		logger.Int("existed", stats.Existed))
	return stats, nil
}

// SynthesizeFile creates a redirect page for one previous-version document.
// The destination is the parallel path under the current version directory;
// a file already present there gates creation (write-once), so reruns never
// overwrite. Returns whether a file was created.
func SynthesizeFile(opts Options, prevFile string) (bool, error) {
	dest, target := canonical.SiblingURL(opts.Base, prevFile, filepath.Join(opts.Base, opts.PreviousDirName), opts.CurrentDirName)
	if opts.AbsoluteURLs {
		target = canonical.AbsoluteURL(opts.Base, prevFile)
	}

	if _, err := os.Stat(dest); err == nil {
		return false, nil
	}

	// A previous page that is already a static redirect hands down its
	// canonical target instead of gaining another hop.
	data, err := safeio.ReadFileContained(opts.Base, prevFile)
	if err != nil {
		return false, err
	}
	if href, ok := inheritedTarget(bytes.NewReader(data)); ok {
		target = href
	}

	page, err := renderPage(target, opts.CurrentVersion, opts.Product, opts.DelaySeconds)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
