package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for docpromote
type Config struct {
	Canonical CanonicalConfig `mapstructure:"canonical" yaml:"canonical"`
	Redirects RedirectsConfig `mapstructure:"redirects" yaml:"redirects"`
	Sitemap   SitemapConfig   `mapstructure:"sitemap" yaml:"sitemap"`
	Walk      WalkConfig      `mapstructure:"walk" yaml:"walk"`
}

// CanonicalConfig controls canonical link generation
type CanonicalConfig struct {
	// AbsoluteURLs renders canonical and redirect URLs as root-anchored
	// paths ("/latest/index.html") instead of relative ones.
	AbsoluteURLs bool `mapstructure:"absolute_urls" yaml:"absolute_urls"`
}

// RedirectsConfig controls synthesized redirect pages
type RedirectsConfig struct {
	DelaySeconds int    `mapstructure:"delay_seconds" yaml:"delay_seconds"`
	Product      string `mapstructure:"product" yaml:"product"`
}

// SitemapConfig controls the sitemap lastmod refresh
type SitemapConfig struct {
	Update bool   `mapstructure:"update" yaml:"update"`
	File   string `mapstructure:"file" yaml:"file"`
}

// WalkConfig filters which files the tree walkers visit
type WalkConfig struct {
	Include []string `mapstructure:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canonical: CanonicalConfig{
			AbsoluteURLs: true,
		},
		Redirects: RedirectsConfig{
			DelaySeconds: 3,
		},
		Sitemap: SitemapConfig{
			Update: false,
			File:   "sitemap.xml",
		},
		Walk: WalkConfig{
			Include: []string{"**/*.html"},
		},
	}
}

// Load reads configuration from docpromote.yaml (working directory or
// $HOME) and DOCPROMOTE_* environment variables, falling back to defaults.
// The effective configuration is validated against the embedded schema.
func Load() (*Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("canonical.absolute_urls", def.Canonical.AbsoluteURLs)
	v.SetDefault("redirects.delay_seconds", def.Redirects.DelaySeconds)
	v.SetDefault("redirects.product", def.Redirects.Product)
	v.SetDefault("sitemap.update", def.Sitemap.Update)
	v.SetDefault("sitemap.file", def.Sitemap.File)
	v.SetDefault("walk.include", def.Walk.Include)
	v.SetDefault("walk.exclude", def.Walk.Exclude)

	v.SetConfigName("docpromote")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("DOCPROMOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; defaults apply when absent.
	_ = v.ReadInConfig()

	if err := ValidateSettings(v.AllSettings()); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
