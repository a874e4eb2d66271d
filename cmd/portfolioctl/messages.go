package main

import (
	"github.com/spf13/cobra"
)

func newMessagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"contact"},
		Short:   "Read and triage contact messages (admin)",
	}

	var status string
	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.client().Messages(cmd.Context(), status, page, limit)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}
	list.Flags().StringVar(&status, "status", "", "new, read, replied or archived")
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&limit, "limit", 10, "page size")

	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change the status of a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.client().SetMessageStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return app.print(m)
		},
	}

	cmd.AddCommand(list, setStatus)
	return cmd
}
