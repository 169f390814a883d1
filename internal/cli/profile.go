package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				profile, err := app.client.Profile(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Name:    %s\n", profile.FullName)
				fmt.Fprintf(app.out, "Email:   %s\n", profile.Email)
				fmt.Fprintf(app.out, "Contact: %s\n", profile.ContactNumber)
				fmt.Fprintf(app.out, "Address: %s\n", profile.Address)
				return nil
			})
			return view(cmd.Context())
		},
	}
}

func newDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show profile, bookings, and owned equipment",
		Long:  `Fetches the three dashboard resources concurrently and prints whichever loaded; a failing resource is reported without discarding the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				d := app.client.FetchDashboard(ctx)

				if d.Profile.Err != nil {
					fmt.Fprintf(app.out, "Profile unavailable: %v\n", d.Profile.Err)
				} else {
					fmt.Fprintf(app.out, "Signed in as %s (%s)\n", d.Profile.Value.FullName, d.Profile.Value.Email)
				}

				if d.Bookings.Err != nil {
					fmt.Fprintf(app.out, "Bookings unavailable: %v\n", d.Bookings.Err)
				} else {
					fmt.Fprintf(app.out, "\nBookings (%d):\n", len(d.Bookings.Value))
					printBookings(app, d.Bookings.Value)
				}

				if d.Equipment.Err != nil {
					fmt.Fprintf(app.out, "Equipment unavailable: %v\n", d.Equipment.Err)
				} else {
					fmt.Fprintf(app.out, "\nYour equipment (%d):\n", len(d.Equipment.Value))
					printEquipment(app, d.Equipment.Value)
				}

				return nil
			})
			return view(cmd.Context())
		},
	}
}
