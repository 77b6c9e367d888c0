/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package redirect

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// pageTemplate renders the synthesized redirect document. Triple-stache
// slots keep the target URL verbatim; it is a path computed by this tool,
// not untrusted input.
var pageTemplate = raymond.MustParse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <meta http-equiv="refresh" content="{{delay}}; url={{{target}}}">
    <link rel="canonical" href="{{{target}}}" />
  </head>
  <body>
    <p>The page does not exist in this version ({{label}}). You will be redirected to the last available version in {{delay}} seconds.</p>
    <p>If the page doesn't open, click the following link: <a href="{{{target}}}">{{{target}}}</a></p>
  </body>
</html>`)

// renderPage produces the redirect document for target. label names the
// version the page is absent from, optionally qualified by a product name.
func renderPage(target, version, product string, delaySeconds int) (string, error) {
	label := version
	if product != "" {
		label = fmt.Sprintf("%s %s", product, version)
	}
	return pageTemplate.Exec(map[string]interface{}{
		"target": target,
		"label":  label,
		"delay":  delaySeconds,
	})
}
