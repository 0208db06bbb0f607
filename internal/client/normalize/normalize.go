// Package normalize canonicalizes candidate records after validation and
// before submission. All transforms are pure and idempotent:
// normalize(normalize(x)) == normalize(x).
package normalize

import (
	"strconv"
	"strings"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

// Booking upper-cases the user identifier and, when the user matches an
// entry in the reference collection (case-insensitively), copies that user's
// stored password over a differing candidate password. The autofill is a
// deliberate UX shortcut, not a security boundary.
func Booking(f models.BookingForm, users []models.User) models.BookingForm {
	f.User = strings.ToUpper(f.User)
	for _, u := range users {
		if strings.EqualFold(u.User, f.User) {
			if f.Password != u.Password {
				f.Password = u.Password
			}
			break
		}
	}
	return f
}

// coerceInt is the numeric coercion applied on submission. Validation has
// already rejected non-numeric input, so the error path only defends against
// callers skipping validate; it yields zero, never a sentinel.
func coerceInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Merge builds the wire record for a normalized form. For updates, previous
// supplies the identity and every server-owned field (state, message, logs,
// usercomment, booking/boat ids); the form only overwrites what a user may
// edit.
func Merge(f models.BookingForm, previous *models.Booking) models.Booking {
	var b models.Booking
	if previous != nil {
		b = *previous
	}
	b.Boat = f.Boat
	b.Fallback = f.Fallback
	b.Date = f.Date
	b.Time = f.Time
	b.Duration = coerceInt(f.Duration)
	b.User = f.User
	b.Password = f.Password
	b.Comment = f.Comment
	b.WhatsAppTo = f.WhatsAppTo
	b.Repeat = models.RepeatType(coerceInt(f.Repeat))
	return b
}

// User fills the display name from the login identifier when left empty,
// the same autofill the server applies on its side.
func User(u models.User) models.User {
	if u.Name == "" {
		u.Name = u.User
	}
	return u
}
