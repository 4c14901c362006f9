package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophprofile/internal/client/client"
	"github.com/dmitrijs2005/gophprofile/internal/client/config"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows/login"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows/profile"
	"github.com/dmitrijs2005/gophprofile/internal/client/session"
	"github.com/dmitrijs2005/gophprofile/internal/common"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	store   flows.TokenStore
	router  *Router
	login   *login.Flow
	profile *profile.Flow

	reader       *bufio.Reader
	out          io.Writer
	readPassword func() ([]byte, error)
}

// NewApp opens the token store and wires the API client, router, notifier
// and both flows. Commands are read from in, screens are written to out and
// logs go to errOut.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger := logging.NewTextLogger(errOut, c.LogLevel)

	store, db, err := openStore(ctx, c.StorePath)
	if err != nil {
		logger.Error(ctx, "error initializing token store", "path", c.StorePath, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.AuthURL, c.ProfileURL, c.RequestTimeout, client.WithTokenTTL(c.TokenTTLMinutes))
	router := NewRouter(logger)
	notifier := newConsoleNotifier(out, logger)

	a := &App{
		config:  c,
		log:     logger,
		db:      db,
		store:   store,
		router:  router,
		login:   login.New(api, store, router, notifier, logger),
		profile: profile.New(api, store, router, notifier, logger),
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.readPassword = passwordReader(in, a.reader, out)

	a.login.Subscribe(func(s login.State) { renderLogin(a.out, s) })
	a.profile.Subscribe(func(s profile.State) { renderProfile(a.out, s) })

	return a, nil
}

// openStore keeps the token in SQLite at path, or in memory only when path
// is empty.
func openStore(ctx context.Context, path string) (flows.TokenStore, *sql.DB, error) {
	if path == "" {
		return session.NewMemoryStore(), nil, nil
	}
	return session.OpenStore(ctx, path)
}

// Run shows the start screen and blocks in the REPL until the user exits.
// The database is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	start, err := a.startRoute(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to GophProfile (type 'help' for commands)")
	a.router.Navigate(start)
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader, a.out)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// startRoute opens the profile screen when a token survived the last run.
func (a *App) startRoute(ctx context.Context) (flows.Route, error) {
	_, ok, err := a.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read stored token: %w", err)
	}
	if ok {
		return flows.RouteProfile, nil
	}
	return flows.RouteLogin, nil
}

// status renders the prompt: the route plus, when a token is stored, the
// user it names.
func (a *App) status(ctx context.Context) string {
	s := string(a.router.Current())
	token, ok, err := a.store.Get(ctx)
	if err != nil || !ok {
		return s
	}
	if name := session.Username(token); name != "" {
		s = fmt.Sprintf("%s (%s)", s, name)
	}
	return s
}

func (a *App) Route() flows.Route {
	return a.router.Current()
}

// Enter runs the entry action of a screen.
func (a *App) Enter(ctx context.Context, route flows.Route) {
	switch route {
	case flows.RouteProfile:
		_ = a.profile.Enter(ctx)
	default:
		loginIntro(a.out)
	}
}

// Login prompts for the username and the password and submits them.
// The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.login.SetUsername(username)
	a.login.SetPassword(strings.TrimRight(string(password), "\r\n"))

	if err := a.login.Submit(ctx); err != nil {
		a.log.Debug(ctx, "login not completed", "error", err)
		return err
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	return a.profile.Refresh(ctx)
}

// Show re-renders the profile screen from the current state.
func (a *App) Show(context.Context) error {
	renderProfile(a.out, a.profile.State())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	return a.profile.Logout(ctx)
}
