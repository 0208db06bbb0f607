// Package credstore is the persistence surface for the session credential:
// a named value with an expiry, the client-side equivalent of a cookie jar.
package credstore

import (
	"context"
	"time"
)

// Store holds named values with an absolute expiry. Get returns "" for
// values that are absent or past their expiry; callers cannot distinguish
// the two, matching cookie semantics.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string, expires time.Time) error
	Remove(ctx context.Context, name string) error
}
