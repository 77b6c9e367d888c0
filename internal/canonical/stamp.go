/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package canonical

import (
	"errors"
	"fmt"
)

// ErrMissingHeadClose reports a document with no detectable </head> marker.
// Such documents cannot be stamped and are left untouched.
var ErrMissingHeadClose = errors.New("no </head> marker found")

// Tag renders a canonical link tag for the given URL.
func Tag(url string) string {
	return fmt.Sprintf(`<link rel="canonical" href="%s">`, url)
}

// Apply rewrites lines so that exactly one canonical tag remains: every
// pre-existing canonical tag is removed and tag is inserted directly before
// the head-closing marker. All other content is preserved byte-for-byte.
//
// A document recognized as a redirect page is returned unchanged with
// changed=false. A document without a head-closing marker is returned
// unchanged with ErrMissingHeadClose.
func Apply(lines []string, tag string) (out []string, changed bool, err error) {
	scan := Scan(lines)
	if scan.IsRedirect {
		return lines, false, nil
	}
	if !scan.HeadClose.Found {
		return lines, false, ErrMissingHeadClose
	}

	out = scan.Lines
	head := scan.HeadClose

	// Delete whole-line tags in descending order so earlier indices stay
	// valid; the head-close line shifts up once per deleted line above it.
	for i := len(scan.WholeTagLines) - 1; i >= 0; i-- {
		idx := scan.WholeTagLines[i]
		out = append(out[:idx], out[idx+1:]...)
		if idx < head.Line {
			head.Line--
		}
	}

	if head.Inline {
		line := out[head.Line]
		out[head.Line] = line[:head.Col] + tag + " " + line[head.Col:]
	} else {
		out = append(out[:head.Line], append([]string{tag + "\n"}, out[head.Line:]...)...)
	}

	return out, true, nil
}
