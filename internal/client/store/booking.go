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

// refresher lets the booking store trigger reference-collection refreshes
// after a successful mutation without knowing the concrete store types.
type refresher interface {
	Refresh(ctx context.Context) error
}

// BookingStore owns the booking collection. Mutations run the full
// validate → normalize → submit pipeline; creating or updating a booking may
// create users and notification targets server-side, so both reference
// collections are re-fetched after success.
type BookingStore struct {
	collection[models.Booking]

	api     api.Client
	log     logging.Logger
	users   *UserStore
	targets *TargetStore
}

func NewBookingStore(c api.Client, users *UserStore, targets *TargetStore, log logging.Logger) *BookingStore {
	return &BookingStore{
		api:     c,
		users:   users,
		targets: targets,
		log:     log.With("kind", "booking"),
	}
}

func (s *BookingStore) Refresh(ctx context.Context) error {
	items, err := s.api.Bookings(ctx)
	if err != nil {
		s.failRefresh()
		s.log.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh bookings: %w", err)
	}
	s.replace(items)
	return nil
}

// Create validates and normalizes the form, then POSTs it. Validation
// failures never reach the network. On success the local collection is
// replaced with the server's snapshot and the reference collections are
// re-fetched.
func (s *BookingStore) Create(ctx context.Context, f models.BookingForm) error {
	if errs := validate.Booking(f); len(errs) > 0 {
		s.setEditErrors(errs)
		return &ValidationError{Messages: errs}
	}

	f = normalize.Booking(f, s.users.Items())
	items, err := s.api.CreateBooking(ctx, normalize.Merge(f, nil))
	if err != nil {
		s.log.Warn(ctx, "create failed", "error", err)
		s.setEditErrors([]string{ErrCreateFailed.Error()})
		return ErrCreateFailed
	}

	s.replaceAfterMutation(items)
	s.refreshReferences(ctx)
	return nil
}

// Update is the same pipeline as Create against the record's identity.
// The usercomment flag is sticky: once true, or as soon as the comment text
// changes, it stays true.
func (s *BookingStore) Update(ctx context.Context, f models.BookingForm, previous models.Booking) error {
	if errs := validate.Booking(f); len(errs) > 0 {
		s.setEditErrors(errs)
		return &ValidationError{Messages: errs}
	}

	f = normalize.Booking(f, s.users.Items())
	b := normalize.Merge(f, &previous)
	b.UserComment = previous.UserComment || previous.Comment != f.Comment

	items, err := s.api.UpdateBooking(ctx, b)
	if err != nil {
		s.log.Warn(ctx, "update failed", "id", previous.Id, "error", err)
		s.setEditErrors([]string{ErrUpdateFailed.Error()})
		return ErrUpdateFailed
	}

	s.replaceAfterMutation(items)
	s.refreshReferences(ctx)
	return nil
}

func (s *BookingStore) Delete(ctx context.Context, b models.Booking) error {
	items, err := s.api.DeleteBooking(ctx, b.Id)
	if err != nil {
		s.log.Warn(ctx, "delete failed", "id", b.Id, "error", err)
		return ErrDeleteFailed
	}
	s.replaceAfterMutation(items)
	return nil
}

// refreshReferences re-fetches users and notification targets; failures are
// logged but never fail the mutation that triggered them.
func (s *BookingStore) refreshReferences(ctx context.Context) {
	for _, ref := range []refresher{s.users, s.targets} {
		if err := ref.Refresh(ctx); err != nil {
			s.log.Warn(ctx, "reference refresh failed", "error", err)
		}
	}
}
