/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/

// Package canonical locates, removes and inserts <link rel="canonical">
// tags in HTML documents while preserving every byte outside the edited
// region, and computes the cross-version URLs the tags point at.
package canonical

import (
	"regexp"
	"strings"
)

var (
	refreshMetaRe = regexp.MustCompile(`meta.*http-equiv=["']refresh["']`)
	// A line that is nothing but a canonical link tag. Leading whitespace
	// allowed, nothing after the closing ">" except the line's newline.
	wholeLineCanonicalRe = regexp.MustCompile(`^\s*<link rel=["']canonical["'].*?>\n$`)
	// A canonical link tag embedded in a line that carries other markup,
	// including its trailing whitespace so removal leaves no gap.
	inlineCanonicalRe    = regexp.MustCompile(`<link rel=["']canonical["'].*?>\s*`)
	wholeLineHeadCloseRe = regexp.MustCompile(`^\s*</head>\n$`)
)

const headCloseMarker = "</head>"

// Location is an optional line/column position of a single-line markup
// construct within a document's line sequence. Col is meaningful only when
// Inline is true (the marker shares its physical line with other content).
type Location struct {
	Found  bool
	Line   int
	Col    int
	Inline bool
}

// ScanResult is the immutable outcome of scanning a document's lines. It
// records everything the writer needs: which whole lines are canonical tags
// (to delete), the lines with inline canonical tags already stripped, and
// where the first head-closing marker sits.
type ScanResult struct {
	// IsRedirect is set when the document carries a meta-refresh tag;
	// redirect pages are never stamped.
	IsRedirect bool
	// WholeTagLines are indices (ascending) of lines that consist solely of
	// a canonical link tag.
	WholeTagLines []int
	// Lines is a copy of the input with inline canonical tags removed.
	Lines []string
	// HeadClose is the first occurrence of </head>, whole-line or inline.
	// For an inline occurrence the column is shifted left by the number of
	// characters removed earlier on the same line.
	HeadClose Location
}

// Scan inspects a document's lines (each retaining its trailing newline,
// as produced by SplitLines) and reports canonical tags and the head-close
// marker. The first head-close occurrence wins, on both the whole-line and
// inline detection paths. Scan never mutates its input.
func Scan(lines []string) ScanResult {
	res := ScanResult{Lines: append([]string(nil), lines...)}

	for idx, line := range lines {
		if refreshMetaRe.MatchString(line) {
			return ScanResult{IsRedirect: true, Lines: append([]string(nil), lines...)}
		}

		// Characters removed from this line so far; a head-close column
		// found later on the same line must shift by this amount.
		charOffset := 0

		if wholeLineCanonicalRe.MatchString(line) {
			res.WholeTagLines = append(res.WholeTagLines, idx)
		} else if tags := inlineCanonicalRe.FindAllString(line, -1); len(tags) > 0 {
			for _, tag := range tags {
				charOffset += len(tag)
			}
			res.Lines[idx] = inlineCanonicalRe.ReplaceAllString(line, "")
		}

		if res.HeadClose.Found {
			continue
		}
		if wholeLineHeadCloseRe.MatchString(line) {
			res.HeadClose = Location{Found: true, Line: idx}
		} else if col := strings.Index(line, headCloseMarker); col >= 0 {
			// A tag removed after the marker on the same line can push the
			// shifted column below zero; the marker cannot sit before 0.
			if col -= charOffset; col < 0 {
				col = 0
			}
			res.HeadClose = Location{Found: true, Line: idx, Col: col, Inline: true}
		}
	}

	return res
}

// SplitLines splits content into lines, each keeping its trailing newline.
// A document that does not end in a newline yields a final element without
// one; Join(lines, "") reproduces the original bytes exactly.
func SplitLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
