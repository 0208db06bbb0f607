package store

import (
	"context"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/normalize"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/validate"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

// UserStore owns the user collection. It doubles as the reference collection
// feeding booking-form password autofill.
type UserStore struct {
	collection[models.User]

	api api.Client
	log logging.Logger
}

func NewUserStore(c api.Client, log logging.Logger) *UserStore {
	return &UserStore{api: c, log: log.With("kind", "user")}
}

func (s *UserStore) Refresh(ctx context.Context) error {
	items, err := s.api.Users(ctx)
	if err != nil {
		s.failRefresh()
		s.log.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh users: %w", err)
	}
	s.replace(items)
	return nil
}

func (s *UserStore) Create(ctx context.Context, u models.User) error {
	if errs := validate.User(u); len(errs) > 0 {
		s.setEditErrors(errs)
		return &ValidationError{Messages: errs}
	}

	items, err := s.api.CreateUser(ctx, normalize.User(u))
	if err != nil {
		s.log.Warn(ctx, "create failed", "error", err)
		s.setEditErrors([]string{ErrCreateFailed.Error()})
		return ErrCreateFailed
	}
	s.replaceAfterMutation(items)
	return nil
}

func (s *UserStore) Update(ctx context.Context, u models.User) error {
	if errs := validate.User(u); len(errs) > 0 {
		s.setEditErrors(errs)
		return &ValidationError{Messages: errs}
	}

	items, err := s.api.UpdateUser(ctx, normalize.User(u))
	if err != nil {
		s.log.Warn(ctx, "update failed", "id", u.Id, "error", err)
		s.setEditErrors([]string{ErrUpdateFailed.Error()})
		return ErrUpdateFailed
	}
	s.replaceAfterMutation(items)
	return nil
}

func (s *UserStore) Delete(ctx context.Context, u models.User) error {
	items, err := s.api.DeleteUser(ctx, u.Id)
	if err != nil {
		s.log.Warn(ctx, "delete failed", "id", u.Id, "error", err)
		return ErrDeleteFailed
	}
	s.replaceAfterMutation(items)
	return nil
}
