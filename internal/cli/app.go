// Package cli implements the lifedash command-line client on top of the
// client stores.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/lifedash/internal/adapters/gateway/rest"
	"github.com/SscSPs/lifedash/internal/adapters/storage/sqlite"
	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/core/services"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/google/subcommands"
)

// App is the state shared by every subcommand of one invocation.
type App struct {
	Workspace *services.Workspace
	Navigator *middleware.MemoryNavigator

	out    io.Writer
	errOut io.Writer
	closer io.Closer
}

// NewApp opens the durable session store and restores the saved session.
func NewApp(ctx context.Context, cfg *config.ClientConfig) (*App, error) {
	store, err := sqlite.NewKVStore(cfg.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	app, err := newApp(ctx, store, cfg, os.Stdout, os.Stderr)
	if err != nil {
		store.Close()
		return nil, err
	}
	app.closer = store
	return app, nil
}

func newApp(ctx context.Context, store ports.KeyValueStore, cfg *config.ClientConfig, out, errOut io.Writer) (*App, error) {
	session := services.NewSession(store)
	if err := session.Restore(ctx); err != nil {
		return nil, err
	}
	start := middleware.HomePath
	if !session.IsAuthenticated() {
		start = middleware.LoginPath
	}
	nav := middleware.NewMemoryNavigator(start, nil, session.IsAuthenticated)
	gw := rest.NewGateway(cfg.APIBaseURL, session, rest.WithTimeout(cfg.HTTPTimeout), rest.WithNavigator(nav))

	return &App{
		Workspace: services.NewWorkspace(gw, session),
		Navigator: nav,
		out:       out,
		errOut:    errOut,
	}, nil
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Register adds every subcommand to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&loginCmd{app: app}, "session")
	c.Register(&registerCmd{app: app}, "session")
	c.Register(&logoutCmd{app: app}, "session")
	c.Register(&whoamiCmd{app: app}, "session")
	c.Register(&authCallbackCmd{app: app}, "session")

	c.Register(&summaryCmd{app: app}, "finance")
	c.Register(&accountsCmd{app: app}, "finance")
	c.Register(&addAccountCmd{app: app}, "finance")
	c.Register(&transactionsCmd{app: app}, "finance")
	c.Register(&addTransactionCmd{app: app}, "finance")
	c.Register(&subscriptionsCmd{app: app}, "finance")
	c.Register(&addSubscriptionCmd{app: app}, "finance")
	c.Register(&categoriesCmd{app: app}, "finance")

	c.Register(&vehiclesCmd{app: app}, "garage")
	c.Register(&addVehicleCmd{app: app}, "garage")
	c.Register(&fuelCmd{app: app}, "garage")

	c.Register(&tasksCmd{app: app}, "tasks")
	c.Register(&addTaskCmd{app: app}, "tasks")
	c.Register(&setTaskStatusCmd{app: app}, "tasks")
}

// fail reports err and picks the exit status. A rejected credential sends the
// user back to login.
func (a *App) fail(err error) subcommands.ExitStatus {
	if errors.Is(err, apperrors.ErrUnauthorized) && a.Navigator.CurrentPath() == middleware.LoginPath {
		fmt.Fprintln(a.errOut, "Session expired or missing. Run `lifedash login` first.")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(a.errOut, "Error:", apperrors.HumanMessage(err))
	return subcommands.ExitFailure
}

// requireSession stops commands that need a signed-in user.
func (a *App) requireSession() bool {
	if a.Workspace.Session.IsAuthenticated() {
		return true
	}
	a.Navigator.Redirect(middleware.HomePath)
	fmt.Fprintln(a.errOut, "Not signed in. Run `lifedash login` first.")
	return false
}
