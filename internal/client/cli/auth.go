package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
)

// getSimpleText, getTextDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getTextDefault = GetTextDefault
var getPassword = GetPassword

// Login prompts for the team credential pair and exchanges it with the
// server. On success the session is persisted, the server config is refetched
// and every collection is loaded. Both a rejected pair and an unreachable
// server surface as the same "invalid credentials" message.
func (a *App) Login(ctx context.Context) error {
	team, err := getSimpleText(a.reader, "Enter team", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	s, err := a.session.Login(ctx, a.api, team, password)
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid credentials")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as team %s\n", s.Tenant())
	_ = a.serverConfig.Refresh(ctx)
	a.refreshAll(ctx)
	return nil
}

// Logout drops the credential, empties every collection and refetches the
// server config so the anonymous view reflects the server's auth policy.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.clearAll()
	_ = a.serverConfig.Refresh(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Status prints the session and connection state.
func (a *App) Status(ctx context.Context) error {
	s := a.session.Current()
	if s.Authenticated() {
		fmt.Fprintf(a.out, "Logged in as team %s\n", s.Tenant())
	} else {
		fmt.Fprintln(a.out, "Not logged in")
	}
	if a.bookings.ConnectionFailed() || a.serverConfig.ConnectionFailed() {
		fmt.Fprintln(a.out, "Server unreachable")
	}
	fmt.Fprintf(a.out, "Activity: %s\n", a.monitor.State())
	return nil
}
