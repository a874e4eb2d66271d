package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SAI-CHANDHAN/My-portfolio/pkg/client"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List and delete projects",
	}

	var q client.ProjectQuery
	list := &cobra.Command{
		Use:   "list",
		Short: "List published projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := app.client().ListProjects(cmd.Context(), q)
			if err != nil {
				return err
			}
			return app.print(page)
		},
	}
	list.Flags().IntVar(&q.Page, "page", 1, "page number")
	list.Flags().IntVar(&q.Limit, "limit", 10, "page size")
	list.Flags().StringVar(&q.Category, "category", "", "filter by category")
	list.Flags().BoolVar(&q.Featured, "featured", false, "featured projects only")
	list.Flags().StringVar(&q.Search, "search", "", "full text search")
	list.Flags().StringVar(&q.Exclude, "exclude", "", "project id to leave out")

	featured := &cobra.Command{
		Use:   "featured",
		Short: "List featured projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.client().FeaturedProjects(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(items)
		},
	}

	all := &cobra.Command{
		Use:   "all",
		Short: "List every project including drafts (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.client().AllProjects(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(items)
		},
	}

	get := &cobra.Command{
		Use:   "get <id|slug>",
		Short: "Show one published project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.client().Project(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.print(p)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client().DeleteProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(app.out, "deleted %s\n", args[0])
			return err
		},
	}

	cmd.AddCommand(list, featured, all, get, del)
	return cmd
}
