package credstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sjhoeksma/myfleetboatrobot/internal/dbx"
)

// SQLiteStore keeps cookies in a local sqlite database so the credential
// survives restarts the way a browser cookie survives reloads.
type SQLiteStore struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// InitDatabase opens (creating if needed) the cookie database at path and
// ensures the schema exists.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cookie db: %w", err)
	}
	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS cookies (
  name    TEXT PRIMARY KEY,
  value   TEXT NOT NULL,
  expires INTEGER NOT NULL
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cookie db: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (string, error) {
	var value string
	var expires int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires FROM cookies WHERE name = ?`, name).Scan(&value, &expires)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if expires <= s.now().Unix() {
		// Expired entries read as absent; cleanup happens on the next Set.
		return "", nil
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, name, value string, expires time.Time) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO cookies(name, value, expires) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires = excluded.expires`,
		name, value, expires.Unix())
	return err
}

func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name)
	return err
}
