// Package validate checks candidate records before submission. All functions
// are pure: they never touch the network and never mutate their input, so a
// non-empty result always means the caller must not issue a request.
package validate

import (
	"fmt"
	"strconv"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
)

// Message wording follows the original booking screen.
func fieldError(field string) string {
	return fmt.Sprintf("Try Again, You didn't enter a valid %s field", field)
}

// numeric reports whether s parses as a base-10 integer.
func numeric(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// Booking returns one message per invalid field, in fixed field order.
// An empty string counts as missing. Duration must be numeric; a non-numeric
// value is reported with the same message as a missing one, so a not-a-number
// sentinel can never travel to the server. Repeat is optional but must be
// numeric when present.
func Booking(f models.BookingForm) []string {
	var errs []string
	if f.Password == "" {
		errs = append(errs, fieldError("Password"))
	}
	if f.User == "" {
		errs = append(errs, fieldError("User"))
	}
	if f.Boat == "" {
		errs = append(errs, fieldError("Boat"))
	}
	if f.Date == "" {
		errs = append(errs, fieldError("Date"))
	}
	if f.Time == "" {
		errs = append(errs, fieldError("Time"))
	}
	if f.Duration == "" || !numeric(f.Duration) {
		errs = append(errs, fieldError("Duration"))
	}
	if f.Repeat != "" && !numeric(f.Repeat) {
		errs = append(errs, fieldError("Repeat"))
	}
	return errs
}

// Team checks a team record. Prefix is only mandatory when creating; an
// update may leave it empty.
func Team(t models.Team, create bool) []string {
	var errs []string
	if t.Password == "" {
		errs = append(errs, fieldError("Password"))
	}
	if t.Team == "" {
		errs = append(errs, fieldError("Team"))
	}
	if t.Title == "" {
		errs = append(errs, fieldError("Title"))
	}
	if create && t.Prefix == "" {
		errs = append(errs, fieldError("Prefix"))
	}
	return errs
}

// User checks a user record.
func User(u models.User) []string {
	var errs []string
	if u.Password == "" {
		errs = append(errs, fieldError("Password"))
	}
	if u.User == "" {
		errs = append(errs, fieldError("User"))
	}
	if u.Name == "" {
		errs = append(errs, fieldError("Name"))
	}
	return errs
}
