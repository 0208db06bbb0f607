package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/activity"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/config"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/session"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/session/credstore"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/store"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the full client assembly: one session store, one API client, one
// store per resource kind and the activity monitor driving background
// refreshes.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session *session.Store
	api     api.Client

	serverConfig *store.ConfigStore
	bookings     *store.BookingStore
	boats        *store.BoatStore
	users        *store.UserStore
	teams        *store.TeamStore
	targets      *store.TargetStore

	monitor *activity.Monitor

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credstore.InitDatabase(ctx, c.CredentialDB)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	sess := session.NewStore(credstore.NewSQLiteStore(db), log)
	apiClient := api.NewRESTClient(c.BaseURL, sess, c.RequestTimeout, log)

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		session: sess,
		api:     apiClient,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	a.serverConfig = store.NewConfigStore(apiClient, log)
	a.users = store.NewUserStore(apiClient, log)
	a.targets = store.NewTargetStore(apiClient, log)
	a.bookings = store.NewBookingStore(apiClient, a.users, a.targets, log)
	a.boats = store.NewBoatStore(apiClient, log)
	a.teams = store.NewTeamStore(apiClient, func() string { return sess.Current().Tenant() }, log)

	a.monitor = activity.NewMonitor(c.IdleAfter, c.PollEvery, a.authorized,
		a.idlePoll, a.wake, log)

	return a, nil
}

// authorized reports whether background and foreground refreshes may hit the
// network. A live session always qualifies; without one the server config must
// be known and must not require auth.
func (a *App) authorized() bool {
	if a.session.Current().Authenticated() {
		return true
	}
	cfg, ok := a.serverConfig.Config()
	return ok && !cfg.AuthRequired
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated()
}

// idlePoll keeps the booking list current while the user is away.
func (a *App) idlePoll(ctx context.Context) {
	_ = a.bookings.Refresh(ctx)
}

// wake runs once on the idle-to-active transition: the collections the user
// is about to look at are refreshed immediately.
func (a *App) wake(ctx context.Context) {
	_ = a.bookings.Refresh(ctx)
	_ = a.users.Refresh(ctx)
	_ = a.boats.Refresh(ctx)
}

func (a *App) refreshAll(ctx context.Context) {
	_ = a.bookings.Refresh(ctx)
	_ = a.boats.Refresh(ctx)
	_ = a.users.Refresh(ctx)
	_ = a.teams.Refresh(ctx)
	_ = a.targets.Refresh(ctx)
}

// clearAll empties every collection, e.g. after logout.
func (a *App) clearAll() {
	a.bookings.Clear()
	a.boats.Clear()
	a.users.Clear()
	a.teams.Clear()
	a.targets.Clear()
}

// RefreshAll re-fetches the server config and every collection on demand.
func (a *App) RefreshAll(ctx context.Context) error {
	if err := a.serverConfig.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	if !a.authorized() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.refreshAll(ctx)
	fmt.Fprintln(a.out, "Refreshed")
	return nil
}

// Run mounts the client and hands control to the REPL. It restores any
// persisted session, fetches the server config, performs the initial refresh
// when allowed and starts the activity monitor.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if s := a.session.Restore(ctx); s.Authenticated() {
		fmt.Fprintf(a.out, "Welcome back, team %s\n", s.Tenant())
	}

	if err := a.serverConfig.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable, will keep retrying in the background")
	}
	if a.authorized() {
		a.refreshAll(ctx)
	}

	a.monitor.Start(ctx)
	defer a.monitor.Stop()

	fmt.Fprintln(a.out, "MyFleet boat robot (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) Touch() {
	a.monitor.Touch()
}

func (a *App) status() string {
	s := a.session.Current()
	if !s.Authenticated() {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Tenant())
}
