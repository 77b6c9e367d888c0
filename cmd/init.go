/*
Copyright © 2025 Docfoundry <oss@docfoundry.dev>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/docfoundry/docpromote/pkg/config"
	"github.com/docfoundry/docpromote/pkg/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const configFileName = "docpromote.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter docpromote.yaml with the default settings",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configFileName); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", configFileName)
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return err
	}

	header := "# docpromote configuration. Values may also be set through\n" +
		"# DOCPROMOTE_* environment variables, e.g. DOCPROMOTE_REDIRECTS_DELAY_SECONDS.\n"
	if err := os.WriteFile(configFileName, append([]byte(header), data...), 0o644); err != nil {
		return err
	}

	logger.Info("Wrote starter configuration", logger.String("file", configFileName))
	return nil
}
