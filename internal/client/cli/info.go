package cli

import (
	"context"
	"fmt"
)

func (a *App) ListBoats(ctx context.Context) error {
	if err := a.boats.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	for _, boat := range a.boats.Items() {
		fmt.Fprintln(a.out, boat)
	}
	return nil
}

func (a *App) ListTargets(ctx context.Context) error {
	if err := a.targets.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	for _, t := range a.targets.Items() {
		fmt.Fprintln(a.out, t.To)
	}
	return nil
}

// ShowConfig prints the server-owned configuration snapshot.
func (a *App) ShowConfig(ctx context.Context) error {
	if err := a.serverConfig.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	cfg, ok := a.serverConfig.Config()
	if !ok {
		return nil
	}
	fmt.Fprintf(a.out, "%s %s (fleet %s)\n", cfg.Name, cfg.Version, cfg.MyFleetVersion)
	fmt.Fprintf(a.out, "Title: %s\n", cfg.Title)
	fmt.Fprintf(a.out, "Club: %s, timezone %s\n", cfg.ClubId, cfg.TimeZone)
	fmt.Fprintf(a.out, "Auth required: %t, admin: %t, planner: %t\n",
		cfg.AuthRequired, cfg.Admin, cfg.Planner)
	if cfg.WhatsApp {
		fmt.Fprintf(a.out, "WhatsApp paired as %s\n", cfg.WhatsAppId)
	}
	return nil
}
