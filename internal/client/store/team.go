package store

import (
	"context"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/validate"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

// TeamStore owns the team collection. tenant yields the current session's
// team identity and backs the self-deletion guard.
type TeamStore struct {
	collection[models.Team]

	api    api.Client
	log    logging.Logger
	tenant func() string
}

func NewTeamStore(c api.Client, tenant func() string, log logging.Logger) *TeamStore {
	return &TeamStore{api: c, tenant: tenant, log: log.With("kind", "team")}
}

func (s *TeamStore) Refresh(ctx context.Context) error {
	items, err := s.api.Teams(ctx)
	if err != nil {
		s.failRefresh()
		s.log.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh teams: %w", err)
	}
	s.replace(items)
	return nil
}

func (s *TeamStore) Create(ctx context.Context, t models.Team) error {
	if errs := validate.Team(t, true); len(errs) > 0 {
		s.setEditErrors(errs)
		return &ValidationError{Messages: errs}
	}

	items, err := s.api.CreateTeam(ctx, t)
	if err != nil {
		s.log.Warn(ctx, "create failed", "error", err)
		s.setEditErrors([]string{ErrCreateFailed.Error()})
		return ErrCreateFailed
	}
	s.replaceAfterMutation(items)
	return nil
}

func (s *TeamStore) Update(ctx context.Context, t models.Team) error {
	if errs := validate.Team(t, false); len(errs) > 0 {
		s.setEditErrors(errs)
		return &ValidationError{Messages: errs}
	}

	items, err := s.api.UpdateTeam(ctx, t)
	if err != nil {
		s.log.Warn(ctx, "update failed", "id", t.Id, "error", err)
		s.setEditErrors([]string{ErrUpdateFailed.Error()})
		return ErrUpdateFailed
	}
	s.replaceAfterMutation(items)
	return nil
}

// CanDelete reports whether the team may be offered for deletion: the
// session's own tenant never is.
func (s *TeamStore) CanDelete(t models.Team) bool {
	return t.Team != s.tenant()
}

func (s *TeamStore) Delete(ctx context.Context, t models.Team) error {
	if !s.CanDelete(t) {
		return ErrDeleteFailed
	}
	items, err := s.api.DeleteTeam(ctx, t.Id)
	if err != nil {
		s.log.Warn(ctx, "delete failed", "id", t.Id, "error", err)
		return ErrDeleteFailed
	}
	s.replaceAfterMutation(items)
	return nil
}
