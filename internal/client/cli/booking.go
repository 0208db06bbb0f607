package cli

import (
	"context"
	"fmt"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

// ListBookings refreshes and prints the booking collection.
func (a *App) ListBookings(ctx context.Context) error {
	if err := a.bookings.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable")
		return err
	}
	items := a.bookings.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No bookings")
		return nil
	}
	for _, b := range items {
		fmt.Fprintf(a.out, "%d: %s %s %s (%d min) %s for %s",
			b.Id, b.Boat, b.Date, b.Time, b.Duration, b.State, b.User)
		if b.Comment != "" {
			fmt.Fprintf(a.out, " - %s", b.Comment)
		}
		if b.Message != "" {
			fmt.Fprintf(a.out, " [%s]", b.Message)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) promptBookingForm(f models.BookingForm) (models.BookingForm, error) {
	prompts := []struct {
		label string
		field *string
	}{
		{"Boat", &f.Boat},
		{"Fallback boat", &f.Fallback},
		{"Date (dd-mm-yyyy)", &f.Date},
		{"Time (hh:mm)", &f.Time},
		{"Duration (minutes)", &f.Duration},
		{"User", &f.User},
		{"Password", &f.Password},
		{"Comment", &f.Comment},
		{"WhatsApp to", &f.WhatsAppTo},
		{"Repeat (0=none 1=daily 2=weekly 3=monthly 4=yearly)", &f.Repeat},
	}
	for _, p := range prompts {
		value, err := getTextDefault(a.reader, p.label, *p.field, a.out)
		if err != nil {
			return f, err
		}
		*p.field = value
	}
	return f, nil
}

// AddBooking walks the user through a new booking form and submits it.
// Validation failures are printed and nothing reaches the server.
func (a *App) AddBooking(ctx context.Context) error {
	f, err := a.promptBookingForm(models.BookingForm{})
	if err != nil {
		return err
	}
	if err := a.bookings.Create(ctx, f); err != nil {
		reportEditError(a.out, err, a.bookings.PendingErrors())
		a.bookings.CancelPendingEdit()
		return nil
	}
	fmt.Fprintln(a.out, "Booking added")
	return nil
}

// EditBooking re-prompts every editable field of an existing booking, keeping
// the current value when the answer is empty.
func (a *App) EditBooking(ctx context.Context) error {
	b, err := a.findBooking()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	f, err := a.promptBookingForm(b.Form())
	if err != nil {
		return err
	}
	if err := a.bookings.Update(ctx, f, b); err != nil {
		reportEditError(a.out, err, a.bookings.PendingErrors())
		a.bookings.CancelPendingEdit()
		return nil
	}
	fmt.Fprintln(a.out, "Booking updated")
	return nil
}

func (a *App) DeleteBooking(ctx context.Context) error {
	b, err := a.findBooking()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if err := a.bookings.Delete(ctx, b); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	fmt.Fprintln(a.out, "Booking deleted")
	return nil
}

func (a *App) findBooking() (models.Booking, error) {
	id, err := askId(a.reader, "Enter booking id", a.out)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range a.bookings.Items() {
		if b.Id == id {
			return b, nil
		}
	}
	return models.Booking{}, fmt.Errorf("no booking with id %d", id)
}
