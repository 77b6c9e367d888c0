/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package cmd

import (
	"os"

	"github.com/docfoundry/docpromote/pkg/buildinfo"
	"github.com/docfoundry/docpromote/pkg/exitcode"
	"github.com/docfoundry/docpromote/pkg/logger"
	"github.com/spf13/cobra"
)

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docpromote",
		Short: "Promote versioned documentation and keep its links canonical",
		Long: `Docpromote maintains a versioned static-documentation tree: it promotes a
freshly built documentation set to the stable "latest" alias, stamps every
page with a canonical link, synthesizes redirect pages for content removed
since the previous version, and refreshes the sitemap's lastmod timestamps.

Examples:
   docpromote publish -s build/docs -sv 28 -pv 27   # Promote a new release
   docpromote init                                  # Write a starter config
   docpromote version                               # Show version`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Wire Cobra's built-in --version using docpromote's binary version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("docpromote {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
// This is called from init() for production and can be called explicitly in tests.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(publishCmd)
	cmd.AddCommand(initCmd)
	cmd.AddCommand(versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger.Initialize(logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "docpromote",
	})
}
