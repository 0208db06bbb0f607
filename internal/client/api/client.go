package api

import (
	"context"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

// Client is the remote fleet server as seen by the rest of the client.
//
// Mutations return the authoritative post-mutation collection, not the
// affected record. PairWhatsApp streams progress chunks; fn is invoked once
// per decoded chunk until the server closes the stream.
type Client interface {
	Config(ctx context.Context) (models.Config, error)
	Login(ctx context.Context, team, password string) (models.Login, error)

	Bookings(ctx context.Context) ([]models.Booking, error)
	CreateBooking(ctx context.Context, b models.Booking) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, b models.Booking) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) ([]models.Booking, error)

	Boats(ctx context.Context) ([]string, error)

	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) ([]models.User, error)
	UpdateUser(ctx context.Context, u models.User) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) ([]models.User, error)

	Teams(ctx context.Context) ([]models.Team, error)
	CreateTeam(ctx context.Context, t models.Team) ([]models.Team, error)
	UpdateTeam(ctx context.Context, t models.Team) ([]models.Team, error)
	DeleteTeam(ctx context.Context, id int64) ([]models.Team, error)

	WhatsAppTargets(ctx context.Context) ([]models.WhatsAppTo, error)
	PairWhatsApp(ctx context.Context, fn func(models.Team)) error
	UnpairWhatsApp(ctx context.Context) error
}
