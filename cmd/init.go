package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	tt "github.com/gnoverse/cmplint/internal/types"
	"github.com/gnoverse/cmplint/lint"
)

// initCmd: cmplint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".cmplint.yaml"
	}

	// Write a config with both rules at their defaults so the available
	// settings are discoverable.
	config := lint.Config{
		Name: "cmplint",
		Rules: map[string]tt.ConfigRule{
			"comparable-types": {Severity: tt.SeverityError},
			"class-name":       {Severity: tt.SeverityWarning},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return err
	}

	return nil
}
