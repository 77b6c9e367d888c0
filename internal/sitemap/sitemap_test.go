/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/

package sitemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshStampsEveryURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0" encoding="utf-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://docs.example.org/latest/index.html</loc>
  </url>
  <url>
    <loc>https://docs.example.org/latest/guide/page.html</loc>
    <lastmod>2001-01-01T00:00:00Z</lastmod>
    <lastmod>2002-02-02T00:00:00Z</lastmod>
  </url>
</urlset>
`), 0o644))

	now := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	require.NoError(t, Refresh(path, now))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))
	urls := doc.Root().SelectElements("url")
	require.Len(t, urls, 2)
	for _, url := range urls {
		lastmods := url.SelectElements("lastmod")
		require.Len(t, lastmods, 1)
		assert.Equal(t, "2026-08-26T10:30:00Z", lastmods[0].Text())
	}

	// The loc stays first within each entry.
	children := urls[1].ChildElements()
	require.NotEmpty(t, children)
	assert.Equal(t, "loc", children[0].Tag)
	assert.Equal(t, "lastmod", children[1].Tag)
}

func TestRefreshWritesStandaloneDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version='1.0' encoding='UTF-8'?>
<urlset><url><loc>https://docs.example.org/latest/index.html</loc></url></urlset>
`), 0o644))

	require.NoError(t, Refresh(path, time.Now()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data),
		`<?xml version="1.0" encoding="utf-8" standalone="yes" ?>`))
}

func TestRefreshRejectsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	assert.Error(t, Refresh(path, time.Now()))
}

func TestRefreshConvertsToUTC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0"?>
<urlset><url><loc>https://docs.example.org/latest/index.html</loc></url></urlset>
`), 0o644))

	east := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, east)
	require.NoError(t, Refresh(path, now))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))
	lastmod := doc.Root().FindElement("url/lastmod")
	require.NotNil(t, lastmod)
	assert.Equal(t, "2026-08-26T10:00:00Z", lastmod.Text())
}
