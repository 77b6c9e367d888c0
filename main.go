/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package main

import "github.com/docfoundry/docpromote/cmd"

func main() {
	cmd.Execute()
}
