/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package cmd

import (
	"fmt"
	"runtime"

	"github.com/docfoundry/docpromote/pkg/buildinfo"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show docpromote version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("extended", false, "Show detailed build information")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	extended, _ := cmd.Flags().GetBool("extended")
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "docpromote %s\n", buildinfo.BinaryVersion)
	if extended {
		fmt.Fprintf(out, "module version: %s\n", buildinfo.ModuleVersion())
		fmt.Fprintf(out, "go version:     %s\n", runtime.Version())
		fmt.Fprintf(out, "platform:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
