package main

import (
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
)

func createRemoveCmd() *cobra.Command {
	var (
		permanent bool
		force     bool
	)

	removeCmd := &cobra.Command{
		Use:     "remove <name|path> [--permanent] [--force]",
		Aliases: []string{"rm"},
		Short:   "Remove a project",
		Long: `Remove a project from the active projects.

By default the directory is kept and the project can be brought back with
'psync restore'. With --permanent the record and the directory are deleted.

Examples:
  psync remove my-project
  psync remove ~/Code/my-project --permanent --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if permanent && !force {
				ok, err := app.Deps.Prompt.Confirm(
					fmt.Sprintf("Delete %s and its directory permanently?", args[0]), false)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			p, err := app.Projects.Remove(args[0], permanent)
			if err != nil {
				return err
			}
			if !cli.Quiet {
				if permanent {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ %s deleted along with %s\n", p.Name, p.LocalPath)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ %s removed, %s was kept (psync restore %s)\n", p.Name, p.LocalPath, p.Name)
				}
			}
			return nil
		},
	}

	// Add flags
	removeCmd.Flags().BoolVar(&permanent, "permanent", false, "Delete the record and the directory")
	removeCmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return removeCmd
}

func createRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <name|path>",
		Short: "Restore a removed project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			p, err := app.Projects.Restore(args[0])
			if err != nil {
				return err
			}
			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s restored\n", p.Name)
			}
			return nil
		},
	}
}
