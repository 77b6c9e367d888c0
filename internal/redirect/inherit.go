/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/

// Package redirect synthesizes meta-refresh redirect pages for documents
// that existed in a previous documentation version but were removed from
// the current one.
package redirect

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// inheritedTarget parses a previous-version document and, when the page is
// itself a static redirect whose meta-refresh content references its own
// canonical link, returns that canonical href. Propagating the existing
// target avoids chaining a new hop onto an old redirect.
//
// The reference check is substring containment of the href within the
// refresh content attribute; hrefs that are prefixes of one another can in
// principle misfire, which is accepted for compatibility.
func inheritedTarget(r io.Reader) (string, bool) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", false
	}

	refreshContent, found := findRefreshMeta(doc)
	if !found {
		return "", false
	}
	href, found := findCanonicalHref(doc)
	if !found || href == "" {
		return "", false
	}
	if !strings.Contains(refreshContent, href) {
		return "", false
	}
	return href, true
}

// findRefreshMeta returns the content attribute of the first
// <meta http-equiv="refresh"> element.
func findRefreshMeta(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "meta" {
		if attr(n, "http-equiv") == "refresh" {
			return attr(n, "content"), true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if content, ok := findRefreshMeta(c); ok {
			return content, ok
		}
	}
	return "", false
}

// findCanonicalHref returns the href of the first <link> element whose rel
// attribute contains the "canonical" token.
func findCanonicalHref(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "link" {
		for _, rel := range strings.Fields(attr(n, "rel")) {
			if rel == "canonical" {
				return attr(n, "href"), true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href, ok := findCanonicalHref(c); ok {
			return href, ok
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
