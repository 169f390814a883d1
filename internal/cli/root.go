// Package cli implements the terminal front end for the marketplace. Each
// command is a view over the backend client; protected views run through the
// route guard so they never render without a local session token.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"agrirent/internal/api"
	"agrirent/internal/config"
	"agrirent/internal/guard"
	"agrirent/internal/session"

	"github.com/spf13/cobra"
)

// App wires the CLI commands to the backend client and session store
type App struct {
	client *api.Client
	store  session.Store
	guard  *guard.Guard
	out    io.Writer
}

// NewApp builds the CLI application from environment configuration. The
// token persists in a file under the user config dir, so a login survives
// across invocations.
func NewApp(cfg *config.Config, out io.Writer) *App {
	var store session.Store
	if tokenPath, err := session.DefaultTokenPath(); err == nil {
		store = session.NewFileStore(tokenPath)
	} else {
		slog.Warn("no user config dir; session will not persist", "error", err)
		store = session.NewMemoryStore()
	}

	nav := api.NavigatorFunc(func() {
		fmt.Fprintln(out, "Session expired. Run 'agrirent login' to sign in again.")
	})

	return &App{
		client: api.New(cfg.APIBaseURL, store, nav),
		store:  store,
		guard:  guard.New(store, nav),
		out:    out,
	}
}

// NewRootCommand builds the agrirent command tree
func NewRootCommand() *cobra.Command {
	app := NewApp(config.Load(), os.Stdout)

	root := &cobra.Command{
		Use:           "agrirent",
		Short:         "Farm equipment rental marketplace client",
		Long:          `agrirent browses listings, manages equipment, and books rentals against the marketplace backend.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCommand(app),
		newRegisterCommand(app),
		newLogoutCommand(app),
		newProfileCommand(app),
		newDashboardCommand(app),
		newEquipmentCommand(app),
		newBookingCommand(app),
	)

	return root
}
