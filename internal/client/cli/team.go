package cli

import (
	"context"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

func (a *App) ListTeams(ctx context.Context) error {
	if err := a.teams.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	for _, t := range a.teams.Items() {
		fmt.Fprintf(a.out, "%d: %s", t.Id, t.Team)
		if t.Title != "" {
			fmt.Fprintf(a.out, " (%s)", t.Title)
		}
		if t.Admin {
			fmt.Fprint(a.out, " [admin]")
		}
		if t.WhatsAppId != "" {
			fmt.Fprint(a.out, " [whatsapp]")
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) AddTeam(ctx context.Context) error {
	var t models.Team
	var err error
	if t.Team, err = getSimpleText(a.reader, "Enter team name", a.out); err != nil {
		return err
	}
	if t.Password, err = getPassword(a.out, "Enter team password"); err != nil {
		return err
	}
	if t.Title, err = getSimpleText(a.reader, "Enter title", a.out); err != nil {
		return err
	}
	if t.Prefix, err = getSimpleText(a.reader, "Enter comment prefix", a.out); err != nil {
		return err
	}

	if err := a.teams.Create(ctx, t); err != nil {
		reportEditError(a.out, err, a.teams.PendingErrors())
		a.teams.CancelPendingEdit()
		return nil
	}
	fmt.Fprintln(a.out, "Team added")
	return nil
}

func (a *App) EditTeam(ctx context.Context) error {
	t, err := a.findTeam()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if t.Title, err = getTextDefault(a.reader, "Title", t.Title, a.out); err != nil {
		return err
	}
	if t.Prefix, err = getTextDefault(a.reader, "Comment prefix", t.Prefix, a.out); err != nil {
		return err
	}
	if t.WhatsAppTo, err = getTextDefault(a.reader, "WhatsApp to", t.WhatsAppTo, a.out); err != nil {
		return err
	}

	if err := a.teams.Update(ctx, t); err != nil {
		reportEditError(a.out, err, a.teams.PendingErrors())
		a.teams.CancelPendingEdit()
		return nil
	}
	fmt.Fprintln(a.out, "Team updated")
	return nil
}

// DeleteTeam removes a team. The session's own team is refused before any
// network call.
func (a *App) DeleteTeam(ctx context.Context) error {
	t, err := a.findTeam()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if !a.teams.CanDelete(t) {
		fmt.Fprintln(a.out, "You cannot delete your own team")
		return nil
	}
	if err := a.teams.Delete(ctx, t); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Team deleted")
	return nil
}

func (a *App) findTeam() (models.Team, error) {
	id, err := askId(a.reader, "Enter team id", a.out)
	if err != nil {
		return models.Team{}, err
	}
	for _, t := range a.teams.Items() {
		if t.Id == id {
			return t, nil
		}
	}
	return models.Team{}, fmt.Errorf("no team with id %d", id)
}
