package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	skilldomain "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
)

func newSkillsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "skills",
		Aliases: []string{"skill"},
		Short:   "List and import skills",
	}

	var category, sort string
	list := &cobra.Command{
		Use:   "list",
		Short: "List visible skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.client().Skills(cmd.Context(), category, sort)
			if err != nil {
				return err
			}
			return app.print(items)
		},
	}
	list.Flags().StringVar(&category, "category", "", "filter by category")
	list.Flags().StringVar(&sort, "sort", "", "sort field, prefix with - for descending")

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List skill categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := app.client().SkillCategories(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(cats)
		},
	}

	imp := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Bulk create skills from a JSON array (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readSkills(args[0])
			if err != nil {
				return err
			}
			res, err := app.client().BulkCreateSkills(cmd.Context(), in)
			if res != nil {
				if perr := app.print(res); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	cmd.AddCommand(list, categories, imp)
	return cmd
}

func readSkills(path string) ([]skilldomain.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in []skilldomain.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(in) == 0 {
		return nil, fmt.Errorf("%s holds no skills", path)
	}
	return in, nil
}
