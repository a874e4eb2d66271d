package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	authservice "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/service"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/bootstrap"
)

// newAdminCmd talks to the store directly; there is no HTTP route that
// creates accounts.
func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts in the configured store",
	}

	var email, password, name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account using the server configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("PORTFOLIO_ADMIN_PASSWORD")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Store.Driver == config.StoreMemory {
				return fmt.Errorf("STORE_DRIVER=memory does not persist accounts")
			}

			store, err := bootstrap.OpenStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close(context.Background()) }()

			u, err := authservice.NewAuthService(store.Users, nil).CreateAdmin(cmd.Context(), email, password, name)
			if err != nil {
				return err
			}
			return app.print(u)
		},
	}
	create.Flags().StringVar(&email, "email", "", "admin email")
	create.Flags().StringVar(&password, "password", "", "admin password (default $PORTFOLIO_ADMIN_PASSWORD)")
	create.Flags().StringVar(&name, "name", "", "display name")
	_ = create.MarkFlagRequired("email")

	cmd.AddCommand(create)
	return cmd
}
