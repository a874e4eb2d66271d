package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SAI-CHANDHAN/My-portfolio/pkg/client"
)

const envToken = "PORTFOLIO_TOKEN"

// App carries the flags shared by every command.
type App struct {
	out     io.Writer
	baseURL string
	token   string
	timeout time.Duration
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Manage portfolio content through the API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&app.baseURL, "url", "http://localhost:5000", "API server root")
	cmd.PersistentFlags().StringVar(&app.token, "token", "", "bearer token (default $"+envToken+")")
	cmd.PersistentFlags().DurationVar(&app.timeout, "timeout", client.DefaultTimeout, "request timeout")

	cmd.AddCommand(
		newHealthCmd(app),
		newLoginCmd(app),
		newProjectsCmd(app),
		newSkillsCmd(app),
		newMessagesCmd(app),
		newAdminCmd(app),
	)
	return cmd
}

func (a *App) client() *client.Client {
	token := a.token
	if token == "" {
		token = os.Getenv(envToken)
	}
	return client.New(a.baseURL,
		client.WithTimeout(a.timeout),
		client.WithCredentials(client.StaticToken(token)),
	)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := app.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(h)
		},
	}
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a token for $" + envToken,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("PORTFOLIO_PASSWORD")
			}
			res, err := app.client().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return app.print(res)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (default $PORTFOLIO_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
