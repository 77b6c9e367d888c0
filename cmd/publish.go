/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docfoundry/docpromote/internal/canonical"
	"github.com/docfoundry/docpromote/internal/promote"
	"github.com/docfoundry/docpromote/internal/redirect"
	"github.com/docfoundry/docpromote/internal/sitemap"
	"github.com/docfoundry/docpromote/pkg/config"
	"github.com/docfoundry/docpromote/pkg/logger"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Promote built documentation to latest and backfill redirects",
	Long: `Publish promotes the built documentation directory to the stable "latest"
alias. All paths are relative to the parent directory of --source.

Every HTML page under latest, and under the previous version when one is
given, is stamped with a canonical link. Pages that existed in the previous
version but no longer exist in the latest one get a meta-refresh redirect
page pointing back at the previous version's copy. Latest is then copied to
a directory named after --source-version, and the sitemap's lastmod
timestamps are optionally refreshed.`,
	RunE: runPublishCmd,
}

func init() {
	registerPublishFlags(publishCmd.Flags())
	_ = publishCmd.MarkFlagRequired("source")
	_ = publishCmd.MarkFlagRequired("source-version")
}

func registerPublishFlags(flags *pflag.FlagSet) {
	flags.StringP("source", "s", "", "Directory containing the built documentation; renamed to \"latest\" (required)")
	flags.String("source-version", "", "Version of the built documentation, e.g. 28; any existing directory with this name is replaced (required)")
	flags.String("previous-version", "", "Directory name of the previous version, e.g. 27; enables redirects for removed pages")
	flags.String("product", "", "Product name used on redirect pages, e.g. WildFly")
	flags.Bool("relative-urls", false, "Render canonical and redirect URLs relative to each page instead of root-anchored")
	flags.Bool("update-sitemap", false, "Refresh lastmod on every URL of the sitemap next to latest")
}

// publishOptions carries the resolved flag/config settings into the pipeline.
type publishOptions struct {
	Source          string
	SourceVersion   string
	PreviousVersion string
	Product         string
	AbsoluteURLs    bool
	UpdateSitemap   bool
}

func runPublishCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := resolvePublishOptions(cmd.Flags(), cfg)
	return runPublish(opts, cfg)
}

// resolvePublishOptions merges flag values over the configuration file.
// Flags override the file only when set explicitly.
func resolvePublishOptions(flags *pflag.FlagSet, cfg *config.Config) publishOptions {
	opts := publishOptions{
		AbsoluteURLs:  cfg.Canonical.AbsoluteURLs,
		Product:       cfg.Redirects.Product,
		UpdateSitemap: cfg.Sitemap.Update,
	}
	opts.Source, _ = flags.GetString("source")
	opts.SourceVersion, _ = flags.GetString("source-version")
	opts.PreviousVersion, _ = flags.GetString("previous-version")

	if flags.Changed("product") {
		opts.Product, _ = flags.GetString("product")
	}
	if flags.Changed("relative-urls") {
		relative, _ := flags.GetBool("relative-urls")
		opts.AbsoluteURLs = !relative
	}
	if flags.Changed("update-sitemap") {
		opts.UpdateSitemap, _ = flags.GetBool("update-sitemap")
	}
	return opts
}

// runPublish executes the publishing pipeline in its fixed order: promote,
// stamp latest, stamp previous, synthesize redirects, snapshot, sitemap.
// The previous version is stamped before redirect synthesis reads it.
func runPublish(opts publishOptions, cfg *config.Config) error {
	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return err
	}
	if info, err := os.Stat(source); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", opts.Source)
	}

	base := filepath.Dir(source)
	latest := filepath.Join(base, promote.LatestDirName)

	if err := promote.Promote(base, source, opts.SourceVersion); err != nil {
		return err
	}
	logger.Info("Promoted documentation",
		logger.String("source", source),
		logger.String("latest", latest))

	stats, err := canonical.StampTree(canonical.WalkOptions{
		Base:         base,
		VersionDir:   latest,
		Label:        promote.LatestDirName,
		AbsoluteURLs: opts.AbsoluteURLs,
		Include:      cfg.Walk.Include,
		Exclude:      cfg.Walk.Exclude,
	})
	if err != nil {
		return err
	}
	logger.Info("Stamped latest tree", logger.Int("stamped", stats.Stamped))

	if opts.PreviousVersion != "" {
		prevStats, err := canonical.StampTree(canonical.WalkOptions{
			Base:         base,
			VersionDir:   filepath.Join(base, opts.PreviousVersion),
			Label:        opts.PreviousVersion,
			AbsoluteURLs: opts.AbsoluteURLs,
			Include:      cfg.Walk.Include,
			Exclude:      cfg.Walk.Exclude,
		})
		if err != nil {
			return err
		}
		logger.Info("Stamped previous tree",
			logger.String("version", opts.PreviousVersion),
			logger.Int("stamped", prevStats.Stamped))

		redirStats, err := redirect.SynthesizeTree(redirect.Options{
			Base:            base,
			CurrentDirName:  promote.LatestDirName,
			PreviousDirName: opts.PreviousVersion,
			CurrentVersion:  opts.SourceVersion,
			Product:         opts.Product,
			AbsoluteURLs:    opts.AbsoluteURLs,
			DelaySeconds:    cfg.Redirects.DelaySeconds,
			Include:         cfg.Walk.Include,
			Exclude:         cfg.Walk.Exclude,
		})
		if err != nil {
			return err
		}
		logger.Info("Synthesized redirects",
			logger.Int("created", redirStats.Created),
			logger.Int("existed", redirStats.Existed))
	}

	// Versioned directory carries the same canonical links as latest.
	if err := promote.Snapshot(base, opts.SourceVersion); err != nil {
		return err
	}
	logger.Info("Copied latest to versioned directory",
		logger.String("version", opts.SourceVersion))

	if opts.UpdateSitemap {
		file := filepath.Join(base, cfg.Sitemap.File)
		if err := sitemap.Refresh(file, time.Now()); err != nil {
			return err
		}
		logger.Info("Refreshed sitemap", logger.String("file", file))
	}

	return nil
}
