package store

import (
	"context"
	"io"
	"log/slog"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

// fakeAPI implements api.Client for store unit tests. Canned results per
// method, call counters for the no-network assertions, and capture of the
// last submitted record.
type fakeAPI struct {
	ConfigRet models.Config
	ConfigErr error

	BookingsRet []models.Booking
	BookingsErr error
	MutatedRet  []models.Booking
	MutateErr   error

	BoatsRet []string
	BoatsErr error

	UsersRet        []models.User
	UsersErr        error
	UsersMutatedRet []models.User
	UsersMutateErr  error

	TeamsRet        []models.Team
	TeamsErr        error
	TeamsMutatedRet []models.Team
	TeamsMutateErr  error

	TargetsRet []models.WhatsAppTo
	TargetsErr error

	Calls map[string]int

	LastBooking models.Booking
	LastUser    models.User
	LastTeam    models.Team
	LastDeleted int64
}

func newFakeAPI() *fakeAPI { return &fakeAPI{Calls: map[string]int{}} }

func (f *fakeAPI) count(name string) { f.Calls[name]++ }

func (f *fakeAPI) Config(ctx context.Context) (models.Config, error) {
	f.count("Config")
	return f.ConfigRet, f.ConfigErr
}

func (f *fakeAPI) Login(ctx context.Context, team, password string) (models.Login, error) {
	f.count("Login")
	return models.Login{Team: team, Status: "ok"}, nil
}

func (f *fakeAPI) Bookings(ctx context.Context) ([]models.Booking, error) {
	f.count("Bookings")
	return f.BookingsRet, f.BookingsErr
}

func (f *fakeAPI) CreateBooking(ctx context.Context, b models.Booking) ([]models.Booking, error) {
	f.count("CreateBooking")
	f.LastBooking = b
	return f.MutatedRet, f.MutateErr
}

func (f *fakeAPI) UpdateBooking(ctx context.Context, b models.Booking) ([]models.Booking, error) {
	f.count("UpdateBooking")
	f.LastBooking = b
	return f.MutatedRet, f.MutateErr
}

func (f *fakeAPI) DeleteBooking(ctx context.Context, id int64) ([]models.Booking, error) {
	f.count("DeleteBooking")
	f.LastDeleted = id
	return f.MutatedRet, f.MutateErr
}

func (f *fakeAPI) Boats(ctx context.Context) ([]string, error) {
	f.count("Boats")
	return f.BoatsRet, f.BoatsErr
}

func (f *fakeAPI) Users(ctx context.Context) ([]models.User, error) {
	f.count("Users")
	return f.UsersRet, f.UsersErr
}

func (f *fakeAPI) CreateUser(ctx context.Context, u models.User) ([]models.User, error) {
	f.count("CreateUser")
	f.LastUser = u
	return f.UsersMutatedRet, f.UsersMutateErr
}

func (f *fakeAPI) UpdateUser(ctx context.Context, u models.User) ([]models.User, error) {
	f.count("UpdateUser")
	f.LastUser = u
	return f.UsersMutatedRet, f.UsersMutateErr
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id int64) ([]models.User, error) {
	f.count("DeleteUser")
	f.LastDeleted = id
	return f.UsersMutatedRet, f.UsersMutateErr
}

func (f *fakeAPI) Teams(ctx context.Context) ([]models.Team, error) {
	f.count("Teams")
	return f.TeamsRet, f.TeamsErr
}

func (f *fakeAPI) CreateTeam(ctx context.Context, t models.Team) ([]models.Team, error) {
	f.count("CreateTeam")
	f.LastTeam = t
	return f.TeamsMutatedRet, f.TeamsMutateErr
}

func (f *fakeAPI) UpdateTeam(ctx context.Context, t models.Team) ([]models.Team, error) {
	f.count("UpdateTeam")
	f.LastTeam = t
	return f.TeamsMutatedRet, f.TeamsMutateErr
}

func (f *fakeAPI) DeleteTeam(ctx context.Context, id int64) ([]models.Team, error) {
	f.count("DeleteTeam")
	f.LastDeleted = id
	return f.TeamsMutatedRet, f.TeamsMutateErr
}

func (f *fakeAPI) WhatsAppTargets(ctx context.Context) ([]models.WhatsAppTo, error) {
	f.count("WhatsAppTargets")
	return f.TargetsRet, f.TargetsErr
}

func (f *fakeAPI) PairWhatsApp(ctx context.Context, fn func(models.Team)) error {
	f.count("PairWhatsApp")
	return nil
}

func (f *fakeAPI) UnpairWhatsApp(ctx context.Context) error {
	f.count("UnpairWhatsApp")
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
