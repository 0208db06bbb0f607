package credstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:credstore_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`DELETE FROM cookies`)
	require.NoError(t, err)
	return NewSQLiteStore(db), db
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	require.NoError(t, s.Set(ctx, "auth", "dGVhbTpzZWNyZXQ=", time.Now().Add(time.Hour)))

	got, err := s.Get(ctx, "auth")
	require.NoError(t, err)
	require.Equal(t, "dGVhbTpzZWNyZXQ=", got)
}

func TestSQLiteStore_MissingReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	got, err := s.Get(ctx, "auth")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLiteStore_ExpiredReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	require.NoError(t, s.Set(ctx, "auth", "stale", time.Now().Add(time.Hour)))
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	got, err := s.Get(ctx, "auth")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLiteStore_SetExtendsExpiry(t *testing.T) {
	ctx := context.Background()
	s, db := setupStore(t)

	first := time.Now().Add(time.Hour)
	second := time.Now().Add(48 * time.Hour)
	require.NoError(t, s.Set(ctx, "auth", "v", first))
	require.NoError(t, s.Set(ctx, "auth", "v", second))

	var expires int64
	require.NoError(t, db.QueryRow(`SELECT expires FROM cookies WHERE name='auth'`).Scan(&expires))
	require.Equal(t, second.Unix(), expires)
}

func TestSQLiteStore_Remove(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	require.NoError(t, s.Set(ctx, "auth", "v", time.Now().Add(time.Hour)))
	require.NoError(t, s.Remove(ctx, "auth"))
	require.NoError(t, s.Remove(ctx, "auth"), "remove is idempotent")

	got, err := s.Get(ctx, "auth")
	require.NoError(t, err)
	require.Empty(t, got)
}
