package main

import (
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func createConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration file path and the effective configuration, with
defaults applied and paths expanded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgManager, err := cli.NewConfigManager()
			if err != nil {
				return err
			}
			cfg, err := cfgManager.GetConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", cfgManager.GetConfigPath(), data)
			return nil
		},
	}
}
