package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"agrirent/internal/api"

	"github.com/spf13/cobra"
)

func newEquipmentCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Browse and manage equipment listings",
	}

	cmd.AddCommand(
		newEquipmentListCommand(app),
		newEquipmentMineCommand(app),
		newEquipmentAddCommand(app),
		newEquipmentUpdateCommand(app),
		newEquipmentDeleteCommand(app),
	)

	return cmd
}

func newEquipmentListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Browse the public equipment catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Public listing: works without a session.
			equipment, err := app.client.AllEquipment(cmd.Context())
			if err != nil {
				return err
			}
			printEquipment(app, equipment)
			return nil
		},
	}
}

func newEquipmentMineCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List equipment you own",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				equipment, err := app.client.MyEquipment(ctx)
				if err != nil {
					return err
				}
				printEquipment(app, equipment)
				return nil
			})
			return view(cmd.Context())
		},
	}
}

// equipmentFlags binds the shared equipment form flags onto a command
func equipmentFlags(cmd *cobra.Command, form *equipmentInput) {
	cmd.Flags().StringVar(&form.name, "name", "", "equipment name")
	cmd.Flags().StringVar(&form.description, "description", "", "equipment description")
	cmd.Flags().StringVar(&form.condition, "condition", "Good", "condition: Good, Better or Best")
	cmd.Flags().StringVar(&form.price, "price", "", "rental price per day")
	cmd.Flags().StringVar(&form.from, "from", "", "availability start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.to, "to", "", "availability end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.owner, "owner", "", "owner name")
	cmd.Flags().StringVar(&form.address, "address", "", "pickup address")
	cmd.Flags().StringVar(&form.contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&form.imagePath, "image", "", "path to an image file")
}

type equipmentInput struct {
	name, description, condition, price string
	from, to                            string
	owner, address, contact             string
	imagePath                           string
}

// toForm converts flag inputs to the client form, opening the image file when
// one was given. The returned cleanup closes it.
func (in *equipmentInput) toForm() (api.EquipmentForm, func(), error) {
	form := api.EquipmentForm{
		Name:          in.name,
		Description:   in.description,
		Condition:     api.Condition(in.condition),
		RentalPrice:   in.price,
		OwnerName:     in.owner,
		Address:       in.address,
		ContactNumber: in.contact,
	}
	cleanup := func() {}

	if in.from != "" {
		start, err := parseDate(in.from)
		if err != nil {
			return form, cleanup, err
		}
		form.Availability.Start = start
	}
	if in.to != "" {
		end, err := parseDate(in.to)
		if err != nil {
			return form, cleanup, err
		}
		form.Availability.End = end
	}

	if in.imagePath != "" {
		f, err := os.Open(in.imagePath)
		if err != nil {
			return form, cleanup, fmt.Errorf("failed to open image: %w", err)
		}
		form.Image = &api.ImageFile{Name: filepath.Base(in.imagePath), Reader: f}
		cleanup = func() { f.Close() }
	}

	return form, cleanup, nil
}

func newEquipmentAddCommand(app *App) *cobra.Command {
	var in equipmentInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "List new equipment for rent",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				form, cleanup, err := in.toForm()
				if err != nil {
					return err
				}
				defer cleanup()

				equipment, err := app.client.CreateEquipment(ctx, form)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Listed %q (%s)\n", equipment.Name, equipment.ID)
				return nil
			})
			return view(cmd.Context())
		},
	}

	equipmentFlags(cmd, &in)
	return cmd
}

func newEquipmentUpdateCommand(app *App) *cobra.Command {
	var in equipmentInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an equipment listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				form, cleanup, err := in.toForm()
				if err != nil {
					return err
				}
				defer cleanup()

				equipment, err := app.client.UpdateEquipment(ctx, args[0], form)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.out, "Updated %q\n", equipment.Name)
				return nil
			})
			return view(cmd.Context())
		},
	}

	equipmentFlags(cmd, &in)
	return cmd
}

func newEquipmentDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an equipment listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := app.guard.Protect(func(ctx context.Context) error {
				if err := app.client.DeleteEquipment(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(app.out, "Equipment deleted")
				return nil
			})
			return view(cmd.Context())
		},
	}
}

// parseDate parses a YYYY-MM-DD flag value into the wire date shape
func parseDate(value string) (api.Date, error) {
	var d api.Date
	if _, err := fmt.Sscanf(value, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil {
		return api.Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", value)
	}
	return d, nil
}

func printEquipment(app *App, equipment []api.Equipment) {
	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONDITION\tPRICE/DAY\tAVAILABLE")
	for _, e := range equipment {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s - %s\n",
			e.ID, e.Name, e.Condition, e.RentalPrice,
			e.AvailabilityDateStart.Format("2006-01-02"),
			e.AvailabilityDateEnd.Format("2006-01-02"),
		)
	}
	w.Flush()
}
