package cli

import (
	"context"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

func (a *App) ListUsers(ctx context.Context) error {
	if err := a.users.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	for _, u := range a.users.Items() {
		fmt.Fprintf(a.out, "%d: %s (%s)\n", u.Id, u.User, u.Name)
	}
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	var u models.User
	var err error
	if u.User, err = getSimpleText(a.reader, "Enter user", a.out); err != nil {
		return err
	}
	if u.Password, err = getPassword(a.out, "Enter password"); err != nil {
		return err
	}
	if u.Name, err = getSimpleText(a.reader, "Enter display name", a.out); err != nil {
		return err
	}

	if err := a.users.Create(ctx, u); err != nil {
		reportEditError(a.out, err, a.users.PendingErrors())
		a.users.CancelPendingEdit()
		return nil
	}
	fmt.Fprintln(a.out, "User added")
	return nil
}

func (a *App) EditUser(ctx context.Context) error {
	u, err := a.findUser()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if u.Password, err = getTextDefault(a.reader, "Password", u.Password, a.out); err != nil {
		return err
	}
	if u.Name, err = getTextDefault(a.reader, "Display name", u.Name, a.out); err != nil {
		return err
	}

	if err := a.users.Update(ctx, u); err != nil {
		reportEditError(a.out, err, a.users.PendingErrors())
		a.users.CancelPendingEdit()
		return nil
	}
	fmt.Fprintln(a.out, "User updated")
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	u, err := a.findUser()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if err := a.users.Delete(ctx, u); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "User deleted")
	return nil
}

func (a *App) findUser() (models.User, error) {
	id, err := askId(a.reader, "Enter user id", a.out)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range a.users.Items() {
		if u.Id == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("no user with id %d", id)
}
