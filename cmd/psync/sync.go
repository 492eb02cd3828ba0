package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/spf13/cobra"
)

var errNoProjects = errors.New("no projects registered, add one with 'psync add' or run 'psync scan'")

func createSyncCmd() *cobra.Command {
	var all bool

	syncCmd := &cobra.Command{
		Use:   "sync [name|path] [--all]",
		Short: "Pull the pinned branch of projects",
		Long: `Pull the pinned branch of a project, or of every active project with --all.

Local changes are stashed before the pull and restored afterwards. When a
restore fails the changes stay in the stash and the project is flagged.
Without argument, the project is picked interactively.

Examples:
  psync sync my-project
  psync sync --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			if all {
				if len(args) > 0 {
					return fmt.Errorf("--all does not take a project argument")
				}
				results, err := app.Projects.SyncAll(cmd.Context())
				if len(results) == 0 && err == nil {
					return errNoProjects
				}
				if printErr := cli.PrintResults(cmd.OutOrStdout(), "sync", results); err == nil {
					err = printErr
				}
				return err
			}

			ref, err := resolveRef(app, args)
			if err != nil {
				return err
			}
			return cli.PrintResult(cmd.OutOrStdout(), "sync", app.Projects.Sync(cmd.Context(), ref))
		},
	}

	syncCmd.Flags().BoolVarP(&all, "all", "a", false, "Synchronize every active project")

	return syncCmd
}

func createPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push [name|path]",
		Short: "Push the current branch of a project",
		Long: `Push the current branch of a project to origin.

A project with uncommitted changes or untracked files is not pushed, and
nothing is sent when the branch is level with its upstream.
Without argument, the project is picked interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			ref, err := resolveRef(app, args)
			if err != nil {
				return err
			}
			return cli.PrintResult(cmd.OutOrStdout(), "push", app.Projects.Push(cmd.Context(), ref))
		},
	}
}

// resolveRef returns the project argument, or asks the user to pick one.
func resolveRef(app *cli.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	projects, err := app.Projects.List(false)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", errNoProjects
	}
	return cli.SelectProject(app.Deps.Prompt, projects)
}
