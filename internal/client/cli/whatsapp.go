package cli

import (
	"context"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

// PairWhatsApp starts the pairing stream and renders each progress chunk as
// it arrives. The stream stays open until the server reports the paired
// identity or the context is canceled.
func (a *App) PairWhatsApp(ctx context.Context) error {
	fmt.Fprintln(a.out, "Pairing, waiting for the server...")
	err := a.api.PairWhatsApp(ctx, func(t models.Team) {
		if t.QRCode != "" {
			fmt.Fprintln(a.out, "Scan this code with your phone:")
			fmt.Fprintln(a.out, t.QRCode)
		}
		if t.WhatsAppId != "" {
			fmt.Fprintf(a.out, "Paired as %s\n", t.WhatsAppId)
		}
	})
	if err != nil {
		fmt.Fprintln(a.out, "Pairing failed")
		return err
	}
	_ = a.serverConfig.Refresh(ctx)
	_ = a.teams.Refresh(ctx)
	return nil
}

func (a *App) UnpairWhatsApp(ctx context.Context) error {
	if err := a.api.UnpairWhatsApp(ctx); err != nil {
		fmt.Fprintln(a.out, "Unpairing failed")
		return err
	}
	fmt.Fprintln(a.out, "WhatsApp unpaired")
	_ = a.serverConfig.Refresh(ctx)
	_ = a.teams.Refresh(ctx)
	return nil
}
