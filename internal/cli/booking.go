package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"agrirent/internal/api"

	"github.com/spf13/cobra"
)

func newBookingCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Manage your equipment bookings",
	}

	cmd.AddCommand(
		newBookingListCommand(app),
		newBookingAddCommand(app),
		newBookingUpdateCommand(app),
		newBookingDeleteCommand(app),
	)

	return cmd
}

func newBookingListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				bookings, err := app.client.UserBookings(ctx)
				if err != nil {
					return err
				}
				printBookings(app, bookings)
				return nil
			})
			return view(cmd.Context())
		},
	}
}

func newBookingAddCommand(app *App) *cobra.Command {
	var req api.BookingRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book a piece of equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				booking, err := app.client.CreateBooking(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Booked %q for %s\n",
					booking.Equipment.Name, booking.RentalDate.Format("2006-01-02"))
				return nil
			})
			return view(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&req.EquipmentID, "equipment", "", "equipment id")
	cmd.Flags().StringVar(&req.RentalDate, "date", "", "rental date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("equipment")
	cmd.MarkFlagRequired("date")

	return cmd
}

func newBookingUpdateCommand(app *App) *cobra.Command {
	var req api.BookingRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a booking's equipment or date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				booking, err := app.client.UpdateBooking(ctx, args[0], req)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Booking updated: %q on %s\n",
					booking.Equipment.Name, booking.RentalDate.Format("2006-01-02"))
				return nil
			})
			return view(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&req.EquipmentID, "equipment", "", "equipment id")
	cmd.Flags().StringVar(&req.RentalDate, "date", "", "rental date (YYYY-MM-DD)")

	return cmd
}

func newBookingDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				if err := app.client.DeleteBooking(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(app.out, "Booking cancelled")
				return nil
			})
			return view(cmd.Context())
		},
	}
}

func printBookings(app *App, bookings []api.Booking) {
	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUIPMENT\tDATE")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, b.Equipment.Name, b.RentalDate.Format("2006-01-02"))
	}
	w.Flush()
}
