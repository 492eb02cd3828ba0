package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func createWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep project statuses up to date while files change",
		Long: `Watch every active project and refresh its cached status when its files,
HEAD or branches change. Stop with Ctrl+C.

Refreshes triggered by changes never fetch; a fetch run elsewhere is picked up
through the remote-tracking branches it updates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cli.NewApp()
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RequireGit(); err != nil {
				return err
			}

			ctx := cmd.Context()
			projects, err := app.Projects.RefreshAll(ctx)
			if err != nil {
				return err
			}
			projects = lo.Filter(projects, func(p registry.Project, _ int) bool {
				return p.Status != registry.StatusMissing
			})
			if len(projects) == 0 {
				return errNoProjects
			}

			out := cmd.OutOrStdout()
			if !cli.Quiet {
				cli.PrintProjects(out, projects)
				fmt.Fprintf(out, "Watching %d projects, press Ctrl+C to stop\n", len(projects))
			}

			roots := lo.Map(projects, func(p registry.Project, _ int) string { return p.LocalPath })
			err = app.Deps.Watcher.Watch(ctx, roots, func(root string) {
				p, err := app.Projects.RefreshLocalStatus(ctx, root)
				if err != nil {
					if ctx.Err() == nil {
						app.Deps.Logger.Warnf("Failed to refresh %s: %v", root, err)
					}
					return
				}
				if !cli.Quiet {
					fmt.Fprintf(out, "%s: %s\n", p.Name, p.Status)
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
