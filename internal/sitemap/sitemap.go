/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/

// Package sitemap refreshes the lastmod timestamps of a sitemap.xml after
// a documentation release.
package sitemap

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// Refresh rewrites path so every <url> entry carries exactly one <lastmod>
// holding now in UTC, placed directly after the entry's first child element
// (the <loc>). The document is re-indented and written with a double-quoted
// standalone XML declaration.
func Refresh(path string, now time.Time) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("parsing sitemap: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("sitemap %s has no root element", path)
	}

	stamp := now.UTC().Format(timestampLayout)
	for _, url := range root.SelectElements("url") {
		setLastMod(url, stamp)
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="utf-8" standalone="yes" `)
	out.SetRoot(root.Copy())
	out.Indent(2)

	if err := out.WriteToFile(path); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}

// setLastMod drops any existing lastmod elements and inserts a fresh one
// right after the first child element.
func setLastMod(url *etree.Element, stamp string) {
	for _, old := range url.SelectElements("lastmod") {
		url.RemoveChild(old)
	}

	lastmod := etree.NewElement("lastmod")
	lastmod.SetText(stamp)

	idx := len(url.Child)
	for i, tok := range url.Child {
		if _, ok := tok.(*etree.Element); ok {
			idx = i + 1
			break
		}
	}
	url.InsertChildAt(idx, lastmod)
}
