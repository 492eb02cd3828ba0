package main

import (
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/lerenn/project-sync/pkg/prompt"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		force      bool
		baseFolder string
	)

	initCmd := &cobra.Command{
		Use:   "init [--force] [--base-folder <path>]",
		Short: "Initialize psync configuration",
		Long: `Write the default configuration, ask for the folder projects are cloned into
and create an empty project registry.

Flags:
  --force         Overwrite an existing configuration
  --base-folder   Set the base folder directly (skips interactive prompt)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgManager, err := cli.NewConfigManager()
			if err != nil {
				return err
			}
			if err := cfgManager.WriteDefault(force); err != nil {
				return err
			}
			cfg, err := cfgManager.GetConfig()
			if err != nil {
				return err
			}

			if baseFolder == "" {
				if baseFolder, err = prompt.NewPrompt().PromptForBaseFolder(cfg.BaseFolder); err != nil {
					return err
				}
			}

			fsys := fs.NewFS()
			if baseFolder, err = fsys.NormalizePath(baseFolder); err != nil {
				return err
			}
			if baseFolder != cfg.BaseFolder {
				cfg.BaseFolder = baseFolder
				if err := cfgManager.SaveConfig(cfg); err != nil {
					return err
				}
			}
			if err := fsys.MkdirAll(cfg.BaseFolder, 0755); err != nil {
				return fmt.Errorf("failed to create base folder: %w", err)
			}
			if err := registry.NewRegistry(fsys, cfg.RegistryFile).Init(); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "psync initialized: configuration in %s, projects in %s\n",
					cfgManager.GetConfigPath(), cfg.BaseFolder)
			}
			return nil
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	initCmd.Flags().StringVar(&baseFolder, "base-folder", "",
		"Set the base folder directly (skips interactive prompt)")

	return initCmd
}
