package cli

import (
	"fmt"

	"agrirent/internal/api"

	"github.com/spf13/cobra"
)

func newLoginCommand(app *App) *cobra.Command {
	var creds api.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.client.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Logged in as %s\n", resp.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCommand(app *App) *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "Registered %s (%s)\n", profile.FullName, profile.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.ContactNumber, "contact", "", "contact number")
	cmd.Flags().StringVar(&req.Address, "address", "", "address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.client.Logout(cmd.Context())
		},
	}
}
