package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/google/subcommands"
)

type loginCmd struct {
	app      *App
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in with email and password" }
func (*loginCmd) Usage() string {
	return `lifedash login -email <email> -password <password>

  Signs in and stores the session for later commands.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Account email.")
	f.StringVar(&p.password, "password", "", "Account password.")
}

func (p *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	auth := p.app.Workspace.Auth
	if err := auth.Login(ctx, p.email, p.password); err != nil {
		fmt.Fprintln(p.app.errOut, "Error:", auth.Err())
		return subcommands.ExitFailure
	}
	p.app.Navigator.Redirect(middleware.HomePath)
	user, _ := p.app.Workspace.Session.User()
	fmt.Fprintf(p.app.out, "Signed in as %s\n", displayName(user.Name, user.Email))
	return subcommands.ExitSuccess
}

type registerCmd struct {
	app      *App
	email    string
	password string
	name     string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and sign in" }
func (*registerCmd) Usage() string {
	return `lifedash register -email <email> -password <password> [-name <name>]
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Account email.")
	f.StringVar(&p.password, "password", "", "Password, at least 6 characters.")
	f.StringVar(&p.name, "name", "", "Display name.")
}

func (p *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	auth := p.app.Workspace.Auth
	if err := auth.Register(ctx, p.email, p.password, p.name); err != nil {
		fmt.Fprintln(p.app.errOut, "Error:", auth.Err())
		return subcommands.ExitFailure
	}
	p.app.Navigator.Redirect(middleware.HomePath)
	fmt.Fprintf(p.app.out, "Welcome, %s\n", displayName(p.name, p.email))
	return subcommands.ExitSuccess
}

type logoutCmd struct {
	app *App
}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "forget the stored session" }
func (*logoutCmd) Usage() string            { return "lifedash logout\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (p *logoutCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := p.app.Workspace.Auth.Logout(ctx); err != nil {
		return p.app.fail(err)
	}
	p.app.Navigator.Redirect(middleware.LoginPath)
	fmt.Fprintln(p.app.out, "Signed out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct {
	app *App
}

func (*whoamiCmd) Name() string             { return "whoami" }
func (*whoamiCmd) Synopsis() string         { return "show the signed-in user" }
func (*whoamiCmd) Usage() string            { return "lifedash whoami\n" }
func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (p *whoamiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	user, ok := p.app.Workspace.Session.User()
	if !ok {
		fmt.Fprintln(p.app.out, "Signed in (no profile stored)")
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(p.app.out, "%s <%s>\n", displayName(user.Name, user.Email), user.Email)
	return subcommands.ExitSuccess
}

// authCallbackCmd completes a browser OAuth sign-in by accepting the token
// the backend put in the /auth-callback redirect.
type authCallbackCmd struct {
	app *App
}

func (*authCallbackCmd) Name() string     { return "auth-callback" }
func (*authCallbackCmd) Synopsis() string { return "store a token from the OAuth redirect" }
func (*authCallbackCmd) Usage() string {
	return `lifedash auth-callback <token>
`
}
func (*authCallbackCmd) SetFlags(_ *flag.FlagSet) {}

func (p *authCallbackCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(p.app.errOut, "Error: expected exactly one token")
		return subcommands.ExitUsageError
	}
	p.app.Navigator.Redirect(middleware.AuthCallbackPath)
	if err := p.app.Workspace.Session.HandleAuthCallback(ctx, f.Arg(0)); err != nil {
		return p.app.fail(err)
	}
	p.app.Navigator.Redirect(middleware.HomePath)
	fmt.Fprintln(p.app.out, "Signed in")
	return subcommands.ExitSuccess
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
